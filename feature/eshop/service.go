package eshop

import (
	"context"
	"errors"
	"fmt"

	"inventree-sync/core/catalog"
	"inventree-sync/core/eshop"
	"inventree-sync/core/images"
	"inventree-sync/core/reconcile"

	"go.uber.org/zap"
)

// Service imports shop products into the catalog.
type Service struct {
	gw         catalog.Gateway
	rec        *reconcile.Reconciler
	updater    *reconcile.Updater
	fetcher    *eshop.Fetcher
	downloader *images.Downloader
	archive    *images.Archive
	categories eshop.CategoryMap
	cfg        Config
	logger     *zap.Logger
}

// NewService creates a new product import service. archive may be nil.
func NewService(gw catalog.Gateway, rec *reconcile.Reconciler, fetcher *eshop.Fetcher, downloader *images.Downloader, archive *images.Archive, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		gw:         gw,
		rec:        rec,
		updater:    reconcile.NewUpdater(gw, logger),
		fetcher:    fetcher,
		downloader: downloader,
		archive:    archive,
		categories: eshop.DefaultCategoryMap(),
		cfg:        cfg,
		logger:     logger,
	}
}

// Import brings one product page into the catalog.
//
// The product is linked to the shop supplier by its slug. A new part gets the
// product image; an existing supplier part gets its link and availability
// refreshed. The quantity 1 price is set in both cases.
func (s *Service) Import(ctx context.Context, pageURL string) (*reconcile.Result, error) {
	if err := eshop.ValidateURL(pageURL); err != nil {
		return nil, err
	}
	policy, err := reconcile.ParseAmbiguityPolicy(s.cfg.Ambiguity)
	if err != nil {
		return nil, err
	}

	enURL, err := s.fetcher.ResolveEnglishURL(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	product, err := s.fetcher.FetchProduct(ctx, enURL)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Product fetched",
		zap.String("name", product.Name),
		zap.String("sku", product.SKU),
		zap.String("price", product.Price.String()))

	supplier, err := reconcile.ResolveCompany(ctx, s.gw, s.cfg.Supplier)
	if err != nil {
		return nil, fmt.Errorf("supplier: %w", err)
	}

	// the category only matters when the product is not linked yet
	existing, err := s.rec.FindSupplierPart(ctx, supplier.ID, product.SKU)
	if err != nil {
		return nil, err
	}
	var categoryID int
	if existing == nil {
		path, err := s.categories.Resolve(product.Categories)
		if err != nil {
			return nil, err
		}
		category, err := reconcile.FindCategory(ctx, s.gw, path)
		if err != nil {
			return nil, err
		}
		categoryID = category.ID
	}

	manufacturer, err := s.manufacturer(ctx, product.Manufacturer)
	if err != nil {
		return nil, err
	}

	available := product.StockQuantity
	res, err := s.rec.Reconcile(ctx, reconcile.Request{
		SKU:          product.SKU,
		Name:         product.Name,
		Description:  product.Description,
		CategoryID:   categoryID,
		SupplierID:   supplier.ID,
		Manufacturer: manufacturer,
		MPN:          product.SKU,
		Link:         product.URL,
		Available:    &available,
		Ambiguity:    policy,
	})
	if err != nil {
		return nil, err
	}

	if res.PartCreated && product.ImageURL != "" {
		if err := s.attachImage(ctx, res.Part.ID, product); err != nil {
			return nil, err
		}
	}

	if !res.SupplierPartCreated {
		updated, err := s.rec.UpdateSupplierPart(ctx, res.SupplierPart, product.URL, &available)
		if err != nil {
			return nil, err
		}
		res.SupplierPart = updated
	}

	if _, err := s.updater.SetPrice(ctx, res.SupplierPart.ID, product.Price, s.cfg.Currency); err != nil {
		return nil, err
	}
	return res, nil
}

// manufacturer resolves the product brand. Brands without a company in the
// catalog are imported without a manufacturer part.
func (s *Service) manufacturer(ctx context.Context, brand string) (*catalog.Company, error) {
	if brand == "" {
		return nil, nil
	}
	company, err := reconcile.ResolveCompany(ctx, s.gw, brand)
	if errors.Is(err, reconcile.ErrNotFound) {
		s.logger.Warn("Brand has no company, skipping manufacturer part", zap.String("brand", brand))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("manufacturer: %w", err)
	}
	return company, nil
}

func (s *Service) attachImage(ctx context.Context, partID int, product *eshop.Product) error {
	img, err := s.downloader.Download(ctx, product.ImageURL)
	if err != nil {
		return err
	}
	if err := images.Attach(ctx, s.gw, s.logger, partID, product.SKU, img); err != nil {
		return err
	}
	if s.archive != nil {
		if _, err := s.archive.Put(ctx, product.SKU, img); err != nil {
			s.logger.Warn("Failed to archive product image", zap.String("sku", product.SKU), zap.Error(err))
		}
	}
	return nil
}
