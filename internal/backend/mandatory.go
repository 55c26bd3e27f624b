package backend

import (
	"context"
	"fmt"

	"grant-management-portal/internal/entity"
)

type MandatoryQuestionClient struct {
	*Client
}

func NewMandatoryQuestionClient(client *Client) *MandatoryQuestionClient {
	return &MandatoryQuestionClient{client}
}

func (c *MandatoryQuestionClient) GetById(ctx context.Context, mandatoryId string) (*entity.MandatoryQuestions, error) {
	var questions entity.MandatoryQuestions
	if err := c.getJSON(ctx, fmt.Sprintf("/grant-mandatory-questions/%s", mandatoryId), &questions); err != nil {
		return nil, err
	}

	return &questions, nil
}

// GetBySubmissionId looks up the question set a submission belongs to.
func (c *MandatoryQuestionClient) GetBySubmissionId(ctx context.Context, submissionId string) (*entity.MandatoryQuestions, error) {
	var questions entity.MandatoryQuestions
	if err := c.getJSON(ctx, fmt.Sprintf("/grant-mandatory-questions/by-submission/%s", submissionId), &questions); err != nil {
		return nil, err
	}

	return &questions, nil
}

func (c *MandatoryQuestionClient) Update(ctx context.Context, input *entity.UpdateMandatoryQuestionInput) error {
	return c.patchJSON(ctx, fmt.Sprintf("/grant-mandatory-questions/%s", input.Id), input, nil)
}
