package reconcile

import (
	"context"
	"fmt"

	"inventree-sync/core/catalog"

	"go.uber.org/zap"
)

// AttributeWriter writes named parameter values onto parts.
// The template registry is loaded on first use and kept for the writer's lifetime.
type AttributeWriter struct {
	gw        catalog.ParameterRepository
	logger    *zap.Logger
	templates map[string]catalog.ParameterTemplate
}

// NewAttributeWriter creates an AttributeWriter.
func NewAttributeWriter(gw catalog.ParameterRepository, logger *zap.Logger) *AttributeWriter {
	return &AttributeWriter{gw: gw, logger: logger}
}

// UpdateOnly overwrites existing parameters. A part without a parameter for one
// of the names fails with *MissingParameterError; attributes before it have
// already been written.
func (w *AttributeWriter) UpdateOnly(ctx context.Context, partID int, attrs []Attribute) error {
	existing, err := w.existing(ctx, partID)
	if err != nil {
		return err
	}

	for _, attr := range attrs {
		param, ok := existing[attr.Name]
		if !ok {
			return &MissingParameterError{PartID: partID, Name: attr.Name}
		}
		if err := w.update(ctx, partID, param, attr); err != nil {
			return err
		}
	}
	return nil
}

// Upsert overwrites existing parameters and creates missing ones from the
// template registry. A name without a template fails with *MissingTemplateError.
func (w *AttributeWriter) Upsert(ctx context.Context, partID int, attrs []Attribute) error {
	existing, err := w.existing(ctx, partID)
	if err != nil {
		return err
	}

	for _, attr := range attrs {
		if param, ok := existing[attr.Name]; ok {
			if err := w.update(ctx, partID, param, attr); err != nil {
				return err
			}
			continue
		}

		tmpl, err := w.template(ctx, attr.Name)
		if err != nil {
			return err
		}
		created, err := w.gw.CreateParameter(ctx, catalog.Parameter{
			PartID:     partID,
			TemplateID: tmpl.ID,
			Data:       attr.Value,
		})
		if err != nil {
			return fmt.Errorf("failed to create parameter %q on part %d: %w", attr.Name, partID, err)
		}
		existing[attr.Name] = *created
		w.logger.Info("Parameter created",
			zap.Int("part_id", partID),
			zap.String("parameter", attr.Name),
			zap.String("value", attr.Value))
	}
	return nil
}

func (w *AttributeWriter) existing(ctx context.Context, partID int) (map[string]catalog.Parameter, error) {
	params, err := w.gw.ListParameters(ctx, partID)
	if err != nil {
		return nil, fmt.Errorf("failed to list parameters of part %d: %w", partID, err)
	}

	byName := make(map[string]catalog.Parameter, len(params))
	for _, p := range params {
		name := p.TemplateName()
		if name == "" {
			tmpl, err := w.templateByID(ctx, p.TemplateID)
			if err != nil {
				return nil, err
			}
			name = tmpl.Name
		}
		byName[name] = p
	}
	return byName, nil
}

func (w *AttributeWriter) update(ctx context.Context, partID int, param catalog.Parameter, attr Attribute) error {
	if param.Data == attr.Value {
		w.logger.Debug("Parameter unchanged", zap.Int("part_id", partID), zap.String("parameter", attr.Name))
		return nil
	}
	if _, err := w.gw.UpdateParameter(ctx, param.ID, attr.Value); err != nil {
		return fmt.Errorf("failed to update parameter %q on part %d: %w", attr.Name, partID, err)
	}
	w.logger.Info("Parameter updated",
		zap.Int("part_id", partID),
		zap.String("parameter", attr.Name),
		zap.String("old", param.Data),
		zap.String("value", attr.Value))
	return nil
}

func (w *AttributeWriter) loadTemplates(ctx context.Context) error {
	if w.templates != nil {
		return nil
	}
	list, err := w.gw.ListParameterTemplates(ctx)
	if err != nil {
		return fmt.Errorf("failed to load parameter templates: %w", err)
	}
	w.templates = make(map[string]catalog.ParameterTemplate, len(list))
	for _, t := range list {
		w.templates[t.Name] = t
	}
	return nil
}

func (w *AttributeWriter) template(ctx context.Context, name string) (catalog.ParameterTemplate, error) {
	if err := w.loadTemplates(ctx); err != nil {
		return catalog.ParameterTemplate{}, err
	}
	t, ok := w.templates[name]
	if !ok {
		return catalog.ParameterTemplate{}, &MissingTemplateError{Name: name}
	}
	return t, nil
}

func (w *AttributeWriter) templateByID(ctx context.Context, id int) (catalog.ParameterTemplate, error) {
	if err := w.loadTemplates(ctx); err != nil {
		return catalog.ParameterTemplate{}, err
	}
	for _, t := range w.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return catalog.ParameterTemplate{}, fmt.Errorf("parameter template %d: %w", id, ErrNotFound)
}
