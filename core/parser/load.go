package parser

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed rules/*.yaml
var builtin embed.FS

type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Name        string                       `yaml:"name"`
	Pattern     string                       `yaml:"pattern"`
	Numbers     []string                     `yaml:"numbers"`
	Flags       []string                     `yaml:"flags"`
	Maps        map[string]map[string]string `yaml:"maps"`
	Set         map[string]string            `yaml:"set"`
	Description string                       `yaml:"description"`
}

// LoadRules reads a YAML rule set:
//
//	rules:
//	  - name: BSN
//	    pattern: '^BSN (?P<capacitance>[0-9,]+)/(?P<voltage>\d+)(?P<high_temperature>-HT)?$'
//	    numbers: [capacitance, voltage]
//	    flags: [high_temperature]
//	    set: {mounting_type: SNAP-IN}
//	    description: 'Elektrolytický kondenzátor s vývody SNAP-IN'
//
// Rules keep the order of the file.
func LoadRules(r io.Reader) (RuleSet, error) {
	var file ruleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty rule file")
		}
		return nil, fmt.Errorf("failed to decode rule file: %w", err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("rule file has no rules")
	}

	rs := make(RuleSet, 0, len(file.Rules))
	for _, raw := range file.Rules {
		re, err := regexp.Compile(raw.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %s: invalid pattern: %w", raw.Name, err)
		}
		rs = append(rs, Rule{
			Name:        raw.Name,
			Pattern:     re,
			Numbers:     raw.Numbers,
			Flags:       raw.Flags,
			Maps:        raw.Maps,
			Set:         raw.Set,
			Description: raw.Description,
		})
	}

	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

func mustLoadBuiltin(name string) RuleSet {
	data, err := builtin.ReadFile("rules/" + name)
	if err != nil {
		panic(err)
	}
	rs, err := LoadRules(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("builtin rules %s: %v", name, err))
	}
	return rs
}

// CapacitorRules parses GES electrolytic capacitor names (RAD, BSN, RAD BIP, AXI).
// Descriptions expect a "dimensions" extra value.
func CapacitorRules() RuleSet { return mustLoadBuiltin("capacitors.yaml") }

// DrillBitRules parses carbide drill bit names.
func DrillBitRules() RuleSet { return mustLoadBuiltin("drills.yaml") }

// PinHeaderRules parses Molex KK-254 (NS25-W) pin header names.
func PinHeaderRules() RuleSet { return mustLoadBuiltin("pinheaders.yaml") }
