package capacitors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"inventree-sync/core/catalog"
	"inventree-sync/core/parser"
	"inventree-sync/core/prompt"
	"inventree-sync/core/reconcile"

	"go.uber.org/zap"
)

var (
	validSKU         = prompt.MatchRegexp(`^GES[0-9]{8}$`)
	validDimensions  = prompt.MatchRegexp(`^[0-9.]+x[0-9.]+$`)
	validCapacitance = prompt.MatchRegexp(`^[0-9.]+µF$`)
	validVoltage     = prompt.MatchRegexp(`^\d+V$`)
	validPackage     = prompt.MatchRegexp(`^Ø[0-9.,]+x[0-9.,]+mm$`)
)

func required(s string) error {
	if s == "" {
		return errors.New("value is required")
	}
	return nil
}

// Service runs the interactive capacitor import.
type Service struct {
	gw      catalog.Gateway
	rec     *reconcile.Reconciler
	updater *reconcile.Updater
	attrs   *reconcile.AttributeWriter
	rules   parser.RuleSet
	prompt  prompt.Prompter
	out     io.Writer
	cfg     Config
	logger  *zap.Logger

	policy   reconcile.AmbiguityPolicy
	supplier *catalog.Company
}

// NewService creates a new capacitor import service. Review output goes to out.
func NewService(gw catalog.Gateway, rec *reconcile.Reconciler, p prompt.Prompter, out io.Writer, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		gw:      gw,
		rec:     rec,
		updater: reconcile.NewUpdater(gw, logger),
		attrs:   reconcile.NewAttributeWriter(gw, logger),
		rules:   parser.CapacitorRules(),
		prompt:  p,
		out:     out,
		cfg:     cfg,
		logger:  logger,
	}
}

// Run validates the configured category, location and supplier, then imports
// capacitors until the operator stops. Input ending at the "another" question
// finishes the run without error.
func (s *Service) Run(ctx context.Context) (int, error) {
	if err := s.prepare(ctx); err != nil {
		return 0, err
	}

	imported := 0
	for {
		if err := s.ImportOne(ctx); err != nil {
			return imported, err
		}
		imported++

		more, err := s.prompt.Confirm("Import another capacitor?", true)
		if errors.Is(err, prompt.ErrAborted) || (err == nil && !more) {
			return imported, nil
		}
		if err != nil {
			return imported, err
		}
	}
}

func (s *Service) prepare(ctx context.Context) error {
	if s.supplier != nil {
		return nil
	}
	policy, err := reconcile.ParseAmbiguityPolicy(s.cfg.Ambiguity)
	if err != nil {
		return err
	}
	if _, err := reconcile.ValidateCategory(ctx, s.gw, s.cfg.CategoryID, s.cfg.CategoryPath); err != nil {
		return err
	}
	if _, err := reconcile.ValidateLocation(ctx, s.gw, s.cfg.LocationID, s.cfg.LocationPath); err != nil {
		return err
	}
	supplier, err := reconcile.ResolveCompany(ctx, s.gw, s.cfg.Supplier)
	if err != nil {
		return fmt.Errorf("supplier: %w", err)
	}
	s.policy = policy
	s.supplier = supplier
	return nil
}

// ImportOne asks for one capacitor, creates it when needed and books the
// received quantity.
func (s *Service) ImportOne(ctx context.Context) error {
	if err := s.prepare(ctx); err != nil {
		return err
	}

	c := NewComponent()
	var sp *catalog.SupplierPart
	for {
		sku, err := s.prompt.Text("SKU", c.SKU, validSKU)
		if err != nil {
			return err
		}
		c.SKU = sku

		sp, err = s.rec.FindSupplierPart(ctx, s.supplier.ID, c.SKU)
		if err != nil {
			return err
		}
		if sp != nil {
			s.logger.Info("Capacitor already imported", zap.String("sku", c.SKU), zap.Int("part_id", sp.PartID))
			break
		}

		if err := s.describe(&c); err != nil {
			return err
		}
		c.Print(s.out)

		ok, err := s.prompt.Confirm("Is the above information correct?", true)
		if err != nil {
			return err
		}
		if ok {
			break
		}
	}

	if sp == nil {
		res, err := s.rec.Reconcile(ctx, reconcile.Request{
			SKU:         c.SKU,
			Name:        c.Name,
			Description: c.Description,
			CategoryID:  s.cfg.CategoryID,
			SupplierID:  s.supplier.ID,
			Ambiguity:   s.policy,
		})
		if err != nil {
			return err
		}
		if res.PartCreated {
			err := s.attrs.UpdateOnly(ctx, res.Part.ID, []reconcile.Attribute{
				{Name: "Capacitance", Value: c.Capacitance},
				{Name: "Mounting Type", Value: c.MountingType},
				{Name: "Rated Voltage", Value: c.RatedVoltage},
				{Name: "Package Type", Value: c.PackageType},
			})
			if err != nil {
				return err
			}
		}
		sp = res.SupplierPart
	}

	answer, err := s.prompt.Text("Quantity", "", prompt.NonNegativeInt)
	if err != nil {
		return err
	}
	quantity, err := strconv.Atoi(answer)
	if err != nil {
		return err
	}
	_, err = s.updater.AddStock(ctx, sp, quantity, s.cfg.LocationID)
	return err
}

// describe fills in name, dimensions and the derived fields. Names the rules
// recognize need no further questions apart from the description.
func (s *Service) describe(c *Component) error {
	var err error
	if c.Name, err = s.prompt.Text("Name", c.Name, required); err != nil {
		return err
	}
	if c.Dimensions, err = s.prompt.Text("Dimensions (diameter x height)", c.Dimensions, validDimensions); err != nil {
		return err
	}

	res := s.rules.Parse(c.Name)
	if res.Matched {
		c.Capacitance = res.Text("capacitance") + "µF"
		c.RatedVoltage = res.Text("voltage") + "V"
		c.MountingType = res.Text("mounting_type")
		c.PackageType = "Ø" + c.Dimensions + "mm"
		c.Description = res.Describe(map[string]string{"dimensions": c.Dimensions})
		s.logger.Debug("Name recognized", zap.String("name", c.Name), zap.String("rule", res.Rule))
	} else {
		s.logger.Warn("Name not recognized, enter the values manually", zap.String("name", c.Name))
		if c.Capacitance, err = s.prompt.Text("Capacitance", c.Capacitance, validCapacitance); err != nil {
			return err
		}
		if c.RatedVoltage, err = s.prompt.Text("Rated voltage", c.RatedVoltage, validVoltage); err != nil {
			return err
		}
		if c.PackageType, err = s.prompt.Text("Package type", c.PackageType, validPackage); err != nil {
			return err
		}
		if c.MountingType, err = s.prompt.Text("Mounting type", c.MountingType, required); err != nil {
			return err
		}
	}

	c.Description, err = s.prompt.Text("Description", c.Description, nil)
	return err
}
