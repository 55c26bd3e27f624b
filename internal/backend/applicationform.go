package backend

import (
	"context"
	"fmt"

	"grant-management-portal/internal/entity"
)

type ApplicationFormClient struct {
	*Client
}

func NewApplicationFormClient(client *Client) *ApplicationFormClient {
	return &ApplicationFormClient{client}
}

func (c *ApplicationFormClient) GetApplicationForm(ctx context.Context, applicationId string) (*entity.ApplicationForm, error) {
	var form entity.ApplicationForm
	if err := c.getJSON(ctx, fmt.Sprintf("/application-forms/%s", applicationId), &form); err != nil {
		return nil, err
	}

	return &form, nil
}

func (c *ApplicationFormClient) DeleteApplicationForm(ctx context.Context, applicationId string) error {
	return c.delete(ctx, fmt.Sprintf("/application-forms/%s", applicationId))
}
