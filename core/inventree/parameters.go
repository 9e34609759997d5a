package inventree

import (
	"context"
	"net/url"
	"strconv"

	"inventree-sync/core/catalog"
)

const (
	parametersPath         = "/api/part/parameter/"
	parameterTemplatesPath = "/api/part/parameter/template/"
)

func (c *Client) ListParameters(ctx context.Context, partID int) ([]catalog.Parameter, error) {
	q := url.Values{}
	q.Set("part", strconv.Itoa(partID))
	return list[catalog.Parameter](ctx, c, parametersPath, q)
}

func (c *Client) CreateParameter(ctx context.Context, p catalog.Parameter) (*catalog.Parameter, error) {
	p.ID = 0
	p.TemplateDetail = nil
	return post[catalog.Parameter](ctx, c, parametersPath, p)
}

func (c *Client) UpdateParameter(ctx context.Context, id int, data string) (*catalog.Parameter, error) {
	return patch[catalog.Parameter](ctx, c, idPath(parametersPath, id), map[string]string{"data": data})
}

func (c *Client) ListParameterTemplates(ctx context.Context) ([]catalog.ParameterTemplate, error) {
	return list[catalog.ParameterTemplate](ctx, c, parameterTemplatesPath, nil)
}
