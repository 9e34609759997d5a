package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"inventree-sync/core/catalog"
)

// Gateway is an in-memory catalog.Gateway.
// Search semantics mirror the remote API: name search is a case-insensitive
// substring match, so callers still have to filter for exact names.
type Gateway struct {
	mu sync.Mutex

	nextID int

	parts             map[int]catalog.Part
	categories        map[int]catalog.Category
	locations         map[int]catalog.StockLocation
	companies         map[int]catalog.Company
	supplierParts     map[int]catalog.SupplierPart
	manufacturerParts map[int]catalog.ManufacturerPart
	templates         map[int]catalog.ParameterTemplate
	parameters        map[int]catalog.Parameter
	priceBreaks       map[int]catalog.PriceBreak
	stockItems        map[int]catalog.StockItem
	images            map[int]string

	mutations int
}

var _ catalog.Gateway = (*Gateway)(nil)

// New creates an empty in-memory catalog.
func New() *Gateway {
	return &Gateway{
		parts:             make(map[int]catalog.Part),
		categories:        make(map[int]catalog.Category),
		locations:         make(map[int]catalog.StockLocation),
		companies:         make(map[int]catalog.Company),
		supplierParts:     make(map[int]catalog.SupplierPart),
		manufacturerParts: make(map[int]catalog.ManufacturerPart),
		templates:         make(map[int]catalog.ParameterTemplate),
		parameters:        make(map[int]catalog.Parameter),
		priceBreaks:       make(map[int]catalog.PriceBreak),
		stockItems:        make(map[int]catalog.StockItem),
		images:            make(map[int]string),
	}
}

func (g *Gateway) id() int {
	g.nextID++
	return g.nextID
}

// Mutations returns how many create/update calls the gateway has served.
func (g *Gateway) Mutations() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mutations
}

// --- seeding helpers ---

// AddCategory seeds a category. The path string is derived from the parent chain.
func (g *Gateway) AddCategory(name string, parentID int) catalog.Category {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := catalog.Category{ID: g.id(), Name: name, PathString: name}
	if parent, ok := g.categories[parentID]; ok {
		pid := parent.ID
		c.ParentID = &pid
		c.PathString = parent.PathString + "/" + name
	}
	g.categories[c.ID] = c
	return c
}

// AddLocation seeds a stock location. The path string is derived from the parent chain.
func (g *Gateway) AddLocation(name string, parentID int) catalog.StockLocation {
	g.mu.Lock()
	defer g.mu.Unlock()

	l := catalog.StockLocation{ID: g.id(), Name: name, PathString: name}
	if parent, ok := g.locations[parentID]; ok {
		pid := parent.ID
		l.ParentID = &pid
		l.PathString = parent.PathString + "/" + name
	}
	g.locations[l.ID] = l
	return l
}

// AddCompany seeds a company.
func (g *Gateway) AddCompany(name string) catalog.Company {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := catalog.Company{ID: g.id(), Name: name, IsSupplier: true, IsManufacturer: true}
	g.companies[c.ID] = c
	return c
}

// AddTemplate seeds a parameter template.
func (g *Gateway) AddTemplate(name string) catalog.ParameterTemplate {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := catalog.ParameterTemplate{ID: g.id(), Name: name}
	g.templates[t.ID] = t
	return t
}

// AddPart seeds a part without counting it as a mutation.
func (g *Gateway) AddPart(p catalog.Part) catalog.Part {
	g.mu.Lock()
	defer g.mu.Unlock()

	p.ID = g.id()
	g.parts[p.ID] = p
	return p
}

// AddSupplierPart seeds a supplier part without counting it as a mutation.
func (g *Gateway) AddSupplierPart(sp catalog.SupplierPart) catalog.SupplierPart {
	g.mu.Lock()
	defer g.mu.Unlock()

	sp.ID = g.id()
	g.supplierParts[sp.ID] = sp
	return sp
}

// AddParameter seeds a parameter on a part from a template name.
func (g *Gateway) AddParameter(partID int, templateName, data string) catalog.Parameter {
	g.mu.Lock()
	defer g.mu.Unlock()

	var tmpl *catalog.ParameterTemplate
	for _, t := range g.templates {
		if t.Name == templateName {
			t := t
			tmpl = &t
			break
		}
	}
	if tmpl == nil {
		t := catalog.ParameterTemplate{ID: g.id(), Name: templateName}
		g.templates[t.ID] = t
		tmpl = &t
	}
	p := catalog.Parameter{ID: g.id(), PartID: partID, TemplateID: tmpl.ID, Data: data, TemplateDetail: tmpl}
	g.parameters[p.ID] = p
	return p
}

// --- inspection helpers ---

// Parts returns all parts.
func (g *Gateway) Parts() []catalog.Part {
	g.mu.Lock()
	defer g.mu.Unlock()
	return collect(g.parts, func(catalog.Part) bool { return true })
}

// SupplierParts returns all supplier parts.
func (g *Gateway) SupplierParts() []catalog.SupplierPart {
	g.mu.Lock()
	defer g.mu.Unlock()
	return collect(g.supplierParts, func(catalog.SupplierPart) bool { return true })
}

// ManufacturerParts returns all manufacturer parts.
func (g *Gateway) ManufacturerParts() []catalog.ManufacturerPart {
	g.mu.Lock()
	defer g.mu.Unlock()
	return collect(g.manufacturerParts, func(catalog.ManufacturerPart) bool { return true })
}

// StockItems returns all stock items.
func (g *Gateway) StockItems() []catalog.StockItem {
	g.mu.Lock()
	defer g.mu.Unlock()
	return collect(g.stockItems, func(catalog.StockItem) bool { return true })
}

// PriceBreaks returns the price breaks of a supplier part.
func (g *Gateway) PriceBreaks(supplierPartID int) []catalog.PriceBreak {
	g.mu.Lock()
	defer g.mu.Unlock()
	return collect(g.priceBreaks, func(pb catalog.PriceBreak) bool { return pb.SupplierPartID == supplierPartID })
}

// Image returns the uploaded image filename of a part.
func (g *Gateway) Image(partID int) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	name, ok := g.images[partID]
	return name, ok
}

// --- catalog.PartRepository ---

func (g *Gateway) ListParts(ctx context.Context, filter catalog.PartFilter) ([]catalog.Part, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	search := strings.ToLower(filter.Search)
	return collect(g.parts, func(p catalog.Part) bool {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			return false
		}
		if filter.CategoryID != 0 {
			if filter.Cascade {
				return g.inCategoryTree(p.CategoryID, filter.CategoryID)
			}
			return p.CategoryID == filter.CategoryID
		}
		return true
	}), nil
}

func (g *Gateway) inCategoryTree(categoryID, rootID int) bool {
	for depth := 0; depth < 64; depth++ {
		if categoryID == rootID {
			return true
		}
		c, ok := g.categories[categoryID]
		if !ok || c.ParentID == nil {
			return false
		}
		categoryID = *c.ParentID
	}
	return false
}

func (g *Gateway) GetPart(ctx context.Context, id int) (*catalog.Part, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.parts[id]
	if !ok {
		return nil, fmt.Errorf("part %d: %w", id, catalog.ErrNotFound)
	}
	return &p, nil
}

func (g *Gateway) CreatePart(ctx context.Context, part catalog.Part) (*catalog.Part, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.categories[part.CategoryID]; !ok {
		return nil, fmt.Errorf("category %d: %w", part.CategoryID, catalog.ErrNotFound)
	}
	part.ID = g.id()
	g.parts[part.ID] = part
	g.mutations++
	return &part, nil
}

func (g *Gateway) UploadPartImage(ctx context.Context, partID int, filename string, data []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.parts[partID]; !ok {
		return fmt.Errorf("part %d: %w", partID, catalog.ErrNotFound)
	}
	if len(data) == 0 {
		return fmt.Errorf("empty image for part %d", partID)
	}
	g.images[partID] = filename
	g.mutations++
	return nil
}

func (g *Gateway) GetCategory(ctx context.Context, id int) (*catalog.Category, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, ok := g.categories[id]
	if !ok {
		return nil, fmt.Errorf("category %d: %w", id, catalog.ErrNotFound)
	}
	return &c, nil
}

func (g *Gateway) ListCategories(ctx context.Context, search string) ([]catalog.Category, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	search = strings.ToLower(search)
	return collect(g.categories, func(c catalog.Category) bool {
		return strings.Contains(strings.ToLower(c.Name), search)
	}), nil
}

// --- catalog.CompanyRepository ---

func (g *Gateway) ListCompanies(ctx context.Context, name string) ([]catalog.Company, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return collect(g.companies, func(c catalog.Company) bool {
		return name == "" || c.Name == name
	}), nil
}

func (g *Gateway) ListSupplierParts(ctx context.Context, filter catalog.SupplierPartFilter) ([]catalog.SupplierPart, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return collect(g.supplierParts, func(sp catalog.SupplierPart) bool {
		if filter.SKU != "" && sp.SKU != filter.SKU {
			return false
		}
		return filter.SupplierID == 0 || sp.SupplierID == filter.SupplierID
	}), nil
}

func (g *Gateway) CreateSupplierPart(ctx context.Context, sp catalog.SupplierPart) (*catalog.SupplierPart, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.parts[sp.PartID]; !ok {
		return nil, fmt.Errorf("part %d: %w", sp.PartID, catalog.ErrNotFound)
	}
	if _, ok := g.companies[sp.SupplierID]; !ok {
		return nil, fmt.Errorf("company %d: %w", sp.SupplierID, catalog.ErrNotFound)
	}
	sp.ID = g.id()
	g.supplierParts[sp.ID] = sp
	g.mutations++
	return &sp, nil
}

func (g *Gateway) UpdateSupplierPart(ctx context.Context, id int, patch catalog.SupplierPartPatch) (*catalog.SupplierPart, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	sp, ok := g.supplierParts[id]
	if !ok {
		return nil, fmt.Errorf("supplier part %d: %w", id, catalog.ErrNotFound)
	}
	if patch.Link != nil {
		sp.Link = *patch.Link
	}
	if patch.Available != nil {
		sp.Available = *patch.Available
	}
	g.supplierParts[id] = sp
	g.mutations++
	return &sp, nil
}

func (g *Gateway) CreateManufacturerPart(ctx context.Context, mp catalog.ManufacturerPart) (*catalog.ManufacturerPart, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.companies[mp.ManufacturerID]; !ok {
		return nil, fmt.Errorf("company %d: %w", mp.ManufacturerID, catalog.ErrNotFound)
	}
	mp.ID = g.id()
	g.manufacturerParts[mp.ID] = mp
	g.mutations++
	return &mp, nil
}

// --- catalog.ParameterRepository ---

func (g *Gateway) ListParameters(ctx context.Context, partID int) ([]catalog.Parameter, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return collect(g.parameters, func(p catalog.Parameter) bool { return p.PartID == partID }), nil
}

func (g *Gateway) CreateParameter(ctx context.Context, p catalog.Parameter) (*catalog.Parameter, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	tmpl, ok := g.templates[p.TemplateID]
	if !ok {
		return nil, fmt.Errorf("parameter template %d: %w", p.TemplateID, catalog.ErrNotFound)
	}
	for _, existing := range g.parameters {
		if existing.PartID == p.PartID && existing.TemplateID == p.TemplateID {
			return nil, fmt.Errorf("parameter %q already exists on part %d", tmpl.Name, p.PartID)
		}
	}
	p.ID = g.id()
	p.TemplateDetail = &tmpl
	g.parameters[p.ID] = p
	g.mutations++
	return &p, nil
}

func (g *Gateway) UpdateParameter(ctx context.Context, id int, data string) (*catalog.Parameter, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.parameters[id]
	if !ok {
		return nil, fmt.Errorf("parameter %d: %w", id, catalog.ErrNotFound)
	}
	p.Data = data
	g.parameters[id] = p
	g.mutations++
	return &p, nil
}

func (g *Gateway) ListParameterTemplates(ctx context.Context) ([]catalog.ParameterTemplate, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return collect(g.templates, func(catalog.ParameterTemplate) bool { return true }), nil
}

// --- catalog.PricingRepository ---

func (g *Gateway) ListPriceBreaks(ctx context.Context, supplierPartID int) ([]catalog.PriceBreak, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return collect(g.priceBreaks, func(pb catalog.PriceBreak) bool { return pb.SupplierPartID == supplierPartID }), nil
}

func (g *Gateway) CreatePriceBreak(ctx context.Context, pb catalog.PriceBreak) (*catalog.PriceBreak, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.supplierParts[pb.SupplierPartID]; !ok {
		return nil, fmt.Errorf("supplier part %d: %w", pb.SupplierPartID, catalog.ErrNotFound)
	}
	pb.ID = g.id()
	g.priceBreaks[pb.ID] = pb
	g.mutations++
	return &pb, nil
}

func (g *Gateway) UpdatePriceBreak(ctx context.Context, id int, pb catalog.PriceBreak) (*catalog.PriceBreak, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.priceBreaks[id]; !ok {
		return nil, fmt.Errorf("price break %d: %w", id, catalog.ErrNotFound)
	}
	pb.ID = id
	g.priceBreaks[id] = pb
	g.mutations++
	return &pb, nil
}

// --- catalog.StockRepository ---

func (g *Gateway) GetStockLocation(ctx context.Context, id int) (*catalog.StockLocation, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	l, ok := g.locations[id]
	if !ok {
		return nil, fmt.Errorf("stock location %d: %w", id, catalog.ErrNotFound)
	}
	return &l, nil
}

func (g *Gateway) CreateStockItem(ctx context.Context, item catalog.StockItem) (*catalog.StockItem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.locations[item.LocationID]; !ok {
		return nil, fmt.Errorf("stock location %d: %w", item.LocationID, catalog.ErrNotFound)
	}
	item.ID = g.id()
	g.stockItems[item.ID] = item
	g.mutations++
	return &item, nil
}

// collect returns the matching values ordered by id, so listings are deterministic.
func collect[T any](m map[int]T, keep func(T) bool) []T {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if v := m[id]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}
