package backend

import (
	"context"
	"fmt"

	"grant-management-portal/internal/entity"
)

type SchemeClient struct {
	*Client
}

func NewSchemeClient(client *Client) *SchemeClient {
	return &SchemeClient{client}
}

func (c *SchemeClient) CreateScheme(ctx context.Context, input *entity.CreateSchemeInput) (string, error) {
	var schemeId string
	if err := c.postJSON(ctx, "/schemes", input, &schemeId); err != nil {
		return "", err
	}

	return schemeId, nil
}

func (c *SchemeClient) GetScheme(ctx context.Context, schemeId string) (*entity.Scheme, error) {
	var scheme entity.Scheme
	if err := c.getJSON(ctx, fmt.Sprintf("/schemes/%s", schemeId), &scheme); err != nil {
		return nil, err
	}

	return &scheme, nil
}

func (c *SchemeClient) PatchScheme(ctx context.Context, schemeId string, input *entity.PatchSchemeInput) error {
	return c.patchJSON(ctx, fmt.Sprintf("/schemes/%s", schemeId), input, nil)
}

func (c *SchemeClient) DeleteScheme(ctx context.Context, schemeId string) error {
	return c.delete(ctx, fmt.Sprintf("/schemes/%s", schemeId))
}
