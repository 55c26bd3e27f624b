package backend

import (
	"context"
	"fmt"

	"grant-management-portal/internal/entity"
)

type AdvertClient struct {
	*Client
}

func NewAdvertClient(client *Client) *AdvertClient {
	return &AdvertClient{client}
}

func (c *AdvertClient) GetAdvert(ctx context.Context, advertId string) (*entity.GrantAdvert, error) {
	var advert entity.GrantAdvert
	if err := c.getJSON(ctx, fmt.Sprintf("/grant-advert/%s", advertId), &advert); err != nil {
		return nil, err
	}

	return &advert, nil
}

func (c *AdvertClient) SaveQuestionPage(ctx context.Context, advertId string, sectionId string, questionId string, input *entity.SaveAdvertPageInput) (*entity.AdvertSection, error) {
	var section entity.AdvertSection
	path := fmt.Sprintf("/grant-advert/%s/sections/%s/questions/%s", advertId, sectionId, questionId)
	if err := c.patchJSON(ctx, path, input, &section); err != nil {
		return nil, err
	}

	return &section, nil
}

func (c *AdvertClient) PublishAdvert(ctx context.Context, advertId string) error {
	return c.postJSON(ctx, fmt.Sprintf("/grant-advert/%s/publish", advertId), nil, nil)
}

func (c *AdvertClient) UnpublishAdvert(ctx context.Context, advertId string) error {
	return c.postJSON(ctx, fmt.Sprintf("/grant-advert/%s/unpublish", advertId), nil, nil)
}

func (c *AdvertClient) ScheduleAdvert(ctx context.Context, advertId string) error {
	return c.postJSON(ctx, fmt.Sprintf("/grant-advert/%s/schedule", advertId), nil, nil)
}

func (c *AdvertClient) UnscheduleAdvert(ctx context.Context, advertId string) error {
	return c.postJSON(ctx, fmt.Sprintf("/grant-advert/%s/unschedule", advertId), nil, nil)
}

func (c *AdvertClient) DeleteAdvert(ctx context.Context, advertId string) error {
	return c.delete(ctx, fmt.Sprintf("/grant-advert/%s", advertId))
}
