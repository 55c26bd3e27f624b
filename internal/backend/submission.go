package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"grant-management-portal/internal/entity"
)

type SubmissionClient struct {
	*Client
}

func NewSubmissionClient(client *Client) *SubmissionClient {
	return &SubmissionClient{client}
}

func (c *SubmissionClient) GetSubmission(ctx context.Context, submissionId string) (*entity.Submission, error) {
	var submission entity.Submission
	path := fmt.Sprintf("/submissions/%s", submissionId)
	if err := c.getJSON(ctx, path, &submission); err != nil {
		return nil, err
	}

	return &submission, nil
}

func (c *SubmissionClient) GetSection(ctx context.Context, submissionId string, sectionId string) (*entity.SectionSummary, error) {
	var section entity.SectionSummary
	path := fmt.Sprintf("/submissions/%s/sections/%s", submissionId, sectionId)
	if err := c.getJSON(ctx, path, &section); err != nil {
		return nil, err
	}

	return &section, nil
}

func (c *SubmissionClient) GetQuestion(ctx context.Context, submissionId string, sectionId string, questionId string) (*entity.Question, error) {
	var question entity.Question
	path := fmt.Sprintf("/submissions/%s/sections/%s/questions/%s", submissionId, sectionId, questionId)
	if err := c.getJSON(ctx, path, &question); err != nil {
		return nil, err
	}

	return &question, nil
}

func (c *SubmissionClient) SaveQuestionResponse(ctx context.Context, submissionId string, sectionId string, questionId string, body *entity.QuestionPostBody) error {
	path := fmt.Sprintf("/submissions/%s/sections/%s/questions/%s", submissionId, sectionId, questionId)

	return c.postJSON(ctx, path, body, nil)
}

func (c *SubmissionClient) GetNextNavigation(ctx context.Context, submissionId string, sectionId string, questionId string, saveAndExit bool) (*entity.Navigation, error) {
	var navigation entity.Navigation
	path := fmt.Sprintf("/submissions/%s/sections/%s/questions/%s/next-navigation?saveAndExit=%t",
		submissionId, sectionId, questionId, saveAndExit)
	if err := c.getJSON(ctx, path, &navigation); err != nil {
		return nil, err
	}

	return &navigation, nil
}

func (c *SubmissionClient) ReviewSection(ctx context.Context, submissionId string, sectionId string, completed bool) error {
	path := fmt.Sprintf("/submissions/%s/sections/%s/review", submissionId, sectionId)

	return c.postJSON(ctx, path, map[string]bool{"isComplete": completed}, nil)
}

func (c *SubmissionClient) CreateSubmission(ctx context.Context, applicationId string) (*entity.CreateSubmissionResponse, error) {
	var created entity.CreateSubmissionResponse
	path := fmt.Sprintf("/submissions/createSubmission/%s", applicationId)
	if err := c.postJSON(ctx, path, nil, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *SubmissionClient) SubmitSubmission(ctx context.Context, submissionId string) error {
	return c.postJSON(ctx, "/submissions/submit", map[string]string{"submissionId": submissionId}, nil)
}

func (c *SubmissionClient) IsSubmitted(ctx context.Context, submissionId string) (bool, error) {
	var response entity.IsSubmittedResponse
	path := fmt.Sprintf("/submissions/%s/isSubmitted", submissionId)
	if err := c.getJSON(ctx, path, &response); err != nil {
		return false, err
	}

	return response.Submitted, nil
}

func (c *SubmissionClient) IsReady(ctx context.Context, submissionId string) (bool, error) {
	var response entity.SubmissionReadyResponse
	path := fmt.Sprintf("/submissions/%s/ready", submissionId)
	if err := c.getJSON(ctx, path, &response); err != nil {
		return false, err
	}

	return response.Ready, nil
}

func (c *SubmissionClient) DownloadSummary(ctx context.Context, submissionId string) ([]byte, error) {
	path := fmt.Sprintf("/submissions/%s/download-summary", submissionId)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building download request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading submission summary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, c.decodeError(resp)
	}

	return io.ReadAll(resp.Body)
}

func (c *SubmissionClient) AttachFile(ctx context.Context, submissionId string, sectionId string, questionId string, filename string, file io.Reader) error {
	path := fmt.Sprintf("/submissions/%s/sections/%s/questions/%s/attach", submissionId, sectionId, questionId)
	fields := map[string]string{"submissionId": submissionId}

	return c.postMultipart(ctx, path, filename, file, fields, nil)
}

func (c *SubmissionClient) DeleteAttachment(ctx context.Context, submissionId string, sectionId string, questionId string, attachmentId string) error {
	path := fmt.Sprintf("/submissions/%s/sections/%s/questions/%s/attachments/%s",
		submissionId, sectionId, questionId, attachmentId)

	return c.delete(ctx, path)
}
