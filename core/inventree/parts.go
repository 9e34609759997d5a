package inventree

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"inventree-sync/core/catalog"
)

const (
	partsPath      = "/api/part/"
	categoriesPath = "/api/part/category/"
)

func (c *Client) ListParts(ctx context.Context, filter catalog.PartFilter) ([]catalog.Part, error) {
	q := url.Values{}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.CategoryID != 0 {
		q.Set("category", strconv.Itoa(filter.CategoryID))
		q.Set("cascade", strconv.FormatBool(filter.Cascade))
	}
	return list[catalog.Part](ctx, c, partsPath, q)
}

func (c *Client) GetPart(ctx context.Context, id int) (*catalog.Part, error) {
	return get[catalog.Part](ctx, c, idPath(partsPath, id))
}

func (c *Client) CreatePart(ctx context.Context, part catalog.Part) (*catalog.Part, error) {
	part.ID = 0
	return post[catalog.Part](ctx, c, partsPath, part)
}

// UploadPartImage replaces the part image with a multipart PATCH of the part.
func (c *Client) UploadPartImage(ctx context.Context, partID int, filename string, data []byte) error {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return fmt.Errorf("failed to build image upload: %w", err)
	}
	if _, err := fw.Write(data); err != nil {
		return fmt.Errorf("failed to build image upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to build image upload: %w", err)
	}

	_, err = c.do(ctx, http.MethodPatch, c.endpoint(idPath(partsPath, partID), nil), mw.FormDataContentType(), &body)
	return err
}

func (c *Client) GetCategory(ctx context.Context, id int) (*catalog.Category, error) {
	return get[catalog.Category](ctx, c, idPath(categoriesPath, id))
}

func (c *Client) ListCategories(ctx context.Context, search string) ([]catalog.Category, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	return list[catalog.Category](ctx, c, categoriesPath, q)
}
