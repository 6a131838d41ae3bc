package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"locket-admin/internal/core/domain"
)

// adPayload is the request body for create and full update. The link is
// sent under both names the backend has used for it. The optional text
// fields and endAt are always sent so clearing them clears them on the
// server.
type adPayload struct {
	Name        string           `json:"name"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	ImageURL    string           `json:"imageUrl"`
	TargetURL   string           `json:"targetUrl"`
	CTAURL      string           `json:"ctaUrl"`
	CTAText     string           `json:"ctaText"`
	Placement   domain.Placement `json:"placement"`
	IsActive    bool             `json:"isActive"`
	Status      string           `json:"status"`
	StartAt     *time.Time       `json:"startAt,omitempty"`
	EndAt       *time.Time       `json:"endAt"`
	Frequency   domain.Frequency `json:"frequency"`
}

func newAdPayload(ad domain.Ad) adPayload {
	return adPayload{
		Name:        ad.Name,
		Title:       ad.Title,
		Description: ad.Description,
		ImageURL:    ad.ImageURL,
		TargetURL:   ad.TargetURL,
		CTAURL:      ad.TargetURL,
		CTAText:     ad.CTAText,
		Placement:   ad.Placement,
		IsActive:    ad.Active,
		Status:      ad.Status().Wire(),
		StartAt:     ad.StartAt,
		EndAt:       ad.EndAt,
		Frequency:   ad.Frequency,
	}
}

func adPath(id string) string { return "/api/admin/ads/" + escape(id) }

// ListAds fetches every ad.
func (c *Client) ListAds(ctx context.Context) ([]domain.Ad, error) {
	var raw json.RawMessage
	if err := c.do(ctx, request{op: "list_ads", method: http.MethodGet, path: "/api/admin/ads"}, &raw); err != nil {
		return nil, err
	}
	ads := []domain.Ad{}
	if len(raw) == 0 {
		return ads, nil
	}
	if err := unwrapField(raw, "ads", &ads); err != nil {
		return nil, fmt.Errorf("list_ads: decode ads: %w", err)
	}
	return ads, nil
}

// CreateAd posts draft and returns the stored ad. The returned ID is empty
// when the backend did not echo the record.
func (c *Client) CreateAd(ctx context.Context, draft domain.Ad) (domain.Ad, error) {
	return c.sendAd(ctx, request{
		op:     "create_ad",
		method: http.MethodPost,
		path:   "/api/admin/ads",
		body:   newAdPayload(draft),
	})
}

// UpdateAd replaces the editable fields of ad.
func (c *Client) UpdateAd(ctx context.Context, ad domain.Ad) (domain.Ad, error) {
	return c.sendAd(ctx, request{
		op:     "update_ad",
		method: http.MethodPut,
		path:   adPath(ad.ID),
		body:   newAdPayload(ad),
	})
}

func (c *Client) sendAd(ctx context.Context, req request) (domain.Ad, error) {
	var raw json.RawMessage
	if err := c.do(ctx, req, &raw); err != nil {
		return domain.Ad{}, err
	}
	var ad domain.Ad
	if len(raw) == 0 {
		return ad, nil
	}
	if err := unwrapField(raw, "ad", &ad); err != nil {
		return domain.Ad{}, fmt.Errorf("%s: decode ad: %w", req.op, err)
	}
	return ad, nil
}

// PatchAdFrequency sends only the fields set in patch, nested under
// "frequency".
func (c *Client) PatchAdFrequency(ctx context.Context, id string, patch domain.FrequencyPatch) error {
	body := struct {
		Frequency domain.FrequencyPatch `json:"frequency"`
	}{Frequency: patch}
	return c.do(ctx, request{op: "patch_ad_frequency", method: http.MethodPut, path: adPath(id), body: body}, nil)
}

// UpdateAdStatus sets the ad to ACTIVE or PAUSED.
func (c *Client) UpdateAdStatus(ctx context.Context, id string, status domain.AdStatus) error {
	body := map[string]string{"status": status.Wire()}
	return c.do(ctx, request{op: "update_ad_status", method: http.MethodPut, path: adPath(id) + "/status", body: body}, nil)
}

// DeleteAd deletes the ad in hard mode. Otherwise it pauses the ad, which
// is the only removal every backend version supports.
func (c *Client) DeleteAd(ctx context.Context, id string) error {
	if !c.hardDelete {
		return c.UpdateAdStatus(ctx, id, domain.AdStatusPaused)
	}
	return c.do(ctx, request{op: "delete_ad", method: http.MethodDelete, path: adPath(id)}, nil)
}

// UploadAdImage sends img as the multipart field "image" and returns the
// hosted URL.
func (c *Client) UploadAdImage(ctx context.Context, img domain.ImageFile) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, img.Name))
	h.Set("Content-Type", img.ContentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return "", fmt.Errorf("upload_ad_image: %w", err)
	}
	if _, err = part.Write(img.Data); err != nil {
		return "", fmt.Errorf("upload_ad_image: %w", err)
	}
	if err = mw.Close(); err != nil {
		return "", fmt.Errorf("upload_ad_image: %w", err)
	}

	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	err = c.do(ctx, request{
		op:          "upload_ad_image",
		method:      http.MethodPost,
		path:        "/api/admin/upload/ad-image",
		rawBody:     &buf,
		contentType: mw.FormDataContentType(),
	}, &out)
	if err != nil {
		return "", err
	}
	if out.ImageURL == "" {
		return "", &domain.APIError{Status: http.StatusOK, Message: "upload response carried no image URL"}
	}
	return out.ImageURL, nil
}
