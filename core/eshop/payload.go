package eshop

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

const nextDataSelector = `script#__NEXT_DATA__[type="application/json"]`

// ExtractNextData returns the JSON payload embedded in a product page.
func ExtractNextData(page []byte) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	sel := doc.Find(nextDataSelector)
	switch sel.Length() {
	case 0:
		return nil, ErrPayloadMissing
	case 1:
	default:
		return nil, &PayloadError{Reason: fmt.Sprintf("%d __NEXT_DATA__ scripts", sel.Length())}
	}

	data := strings.TrimSpace(sel.Text())
	if data == "" {
		return nil, ErrPayloadMissing
	}
	return []byte(data), nil
}

type nextData struct {
	Props struct {
		PageProps struct {
			UrqlState map[string]urqlEntry `json:"urqlState"`
		} `json:"pageProps"`
	} `json:"props"`
}

type urqlEntry struct {
	HasNext bool   `json:"hasNext"`
	Data    string `json:"data"`
}

type rawProduct struct {
	Name             string  `json:"nameWithReplacedPlaceholders"`
	Slug             string  `json:"slug"`
	ShortDescription string  `json:"shortDescription"`
	UUID             string  `json:"uuid"`
	StockQuantity    float64 `json:"stockQuantity"`
	Breadcrumbs      []struct {
		Typename string `json:"__typename"`
		Name     string `json:"name"`
	} `json:"breadcrumbs"`
	URLList []struct {
		Locale string `json:"locale"`
		URL    string `json:"url"`
	} `json:"urlList"`
	Price *struct {
		PriceWithoutVat decimal.Decimal `json:"priceWithoutVat"`
	} `json:"price"`
	Brand *struct {
		Name string `json:"name"`
	} `json:"brand"`
	Images []struct {
		Typename string `json:"__typename"`
		URL      string `json:"url"`
	} `json:"images"`
}

// decodeProduct unwraps the single urql cache entry of the payload.
func decodeProduct(payload []byte) (*rawProduct, error) {
	var nd nextData
	if err := json.Unmarshal(payload, &nd); err != nil {
		return nil, &PayloadError{Reason: err.Error()}
	}

	state := nd.Props.PageProps.UrqlState
	if len(state) != 1 {
		keys := make([]string, 0, len(state))
		for k := range state {
			keys = append(keys, k)
		}
		return nil, &PayloadError{Reason: fmt.Sprintf("expected one product key, got %d %v", len(state), keys)}
	}

	var entry urqlEntry
	for _, v := range state {
		entry = v
	}
	if entry.HasNext {
		return nil, &PayloadError{Reason: "incomplete payload (hasNext)"}
	}

	var data struct {
		Product *rawProduct `json:"product"`
	}
	if err := json.Unmarshal([]byte(entry.Data), &data); err != nil {
		return nil, &PayloadError{Reason: "product data: " + err.Error()}
	}
	if data.Product == nil {
		return nil, &PayloadError{Reason: "no product in data"}
	}
	return data.Product, nil
}

func (p *rawProduct) englishURL() (string, error) {
	var urls []string
	for _, u := range p.URLList {
		if u.Locale == "en" {
			urls = append(urls, u.URL)
		}
	}
	if len(urls) != 1 {
		return "", &PayloadError{Reason: fmt.Sprintf("expected one en url, got %d", len(urls))}
	}
	return urls[0], nil
}

var baseURLPattern = regexp.MustCompile(`^(https?://[^/]+)/`)

// ParseProduct converts an embedded payload into a Product.
func ParseProduct(payload []byte) (*Product, error) {
	raw, err := decodeProduct(payload)
	if err != nil {
		return nil, err
	}

	url, err := raw.englishURL()
	if err != nil {
		return nil, err
	}
	m := baseURLPattern.FindStringSubmatch(url)
	if m == nil {
		return nil, &PayloadError{Reason: fmt.Sprintf("en url %q has no host", url)}
	}
	if raw.Price == nil {
		return nil, &PayloadError{Reason: "no price"}
	}

	description, err := firstTextLine(raw.ShortDescription)
	if err != nil {
		return nil, err
	}

	var categories []string
	for _, b := range raw.Breadcrumbs {
		if b.Typename == "Category" {
			categories = append(categories, b.Name)
		}
	}
	for i, j := 0, len(categories)-1; i < j; i, j = i+1, j-1 {
		categories[i], categories[j] = categories[j], categories[i]
	}

	product := &Product{
		Name:          raw.Name,
		SKU:           strings.TrimSuffix(strings.TrimPrefix(raw.Slug, "product/"), "/"),
		Description:   description,
		UUID:          raw.UUID,
		URL:           url,
		StockQuantity: raw.StockQuantity,
		Categories:    categories,
		Price:         raw.Price.PriceWithoutVat,
	}
	if raw.Brand != nil {
		product.Manufacturer = raw.Brand.Name
	}
	// images may be mixed with videos
	for _, img := range raw.Images {
		if img.Typename == "Image" {
			product.ImageURL = m[1] + img.URL
			break
		}
	}
	return product, nil
}

// firstTextLine returns the first non-blank text of an HTML fragment.
func firstTextLine(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", &PayloadError{Reason: "short description: " + err.Error()}
	}

	var line string
	var walk func(*goquery.Selection) bool
	walk = func(sel *goquery.Selection) bool {
		found := false
		sel.Contents().EachWithBreak(func(_ int, node *goquery.Selection) bool {
			if goquery.NodeName(node) == "#text" {
				for _, l := range strings.Split(node.Text(), "\n") {
					if t := strings.TrimSpace(l); t != "" {
						line = t
						found = true
						return false
					}
				}
				return true
			}
			if walk(node) {
				found = true
				return false
			}
			return true
		})
		return found
	}
	walk(doc.Selection)
	return line, nil
}
