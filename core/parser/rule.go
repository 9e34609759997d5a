package parser

import (
	"fmt"
	"regexp"
)

// Rule is one pattern of a rule set.
//
// Every named capture group that participates in a match becomes a field.
// Groups listed in Numbers are normalized to numbers, groups listed in Flags
// become booleans (false when the group did not take part in the match), and
// groups listed in Maps are translated through their lookup table. Set adds
// constant fields to every match of the rule.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Numbers     []string
	Flags       []string
	Maps        map[string]map[string]string
	Set         map[string]string
	Description string
}

// Validate checks that every group the rule refers to exists in its pattern.
func (r Rule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rule without name")
	}
	if r.Pattern == nil {
		return fmt.Errorf("rule %s: missing pattern", r.Name)
	}

	groups := make(map[string]bool)
	for _, name := range r.Pattern.SubexpNames() {
		if name != "" {
			groups[name] = true
		}
	}

	check := func(kind, name string) error {
		if !groups[name] {
			return fmt.Errorf("rule %s: %s group %q not in pattern", r.Name, kind, name)
		}
		return nil
	}
	for _, name := range r.Numbers {
		if err := check("number", name); err != nil {
			return err
		}
	}
	for _, name := range r.Flags {
		if err := check("flag", name); err != nil {
			return err
		}
	}
	for name := range r.Maps {
		if err := check("mapped", name); err != nil {
			return err
		}
	}
	return nil
}

// match applies the rule to text. A number group that does not normalize or a
// mapped group without a table entry makes the rule miss.
func (r Rule) match(text string) (map[string]Value, bool) {
	idx := r.Pattern.FindStringSubmatchIndex(text)
	if idx == nil {
		return nil, false
	}

	fields := make(map[string]Value, len(r.Set)+r.Pattern.NumSubexp())
	for name, value := range r.Set {
		fields[name] = StringValue(value)
	}

	for i, name := range r.Pattern.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		start, end := idx[2*i], idx[2*i+1]
		present := start >= 0

		switch {
		case contains(r.Flags, name):
			fields[name] = BoolValue(present)
		case !present:
			continue
		case contains(r.Numbers, name):
			v, err := NumberValue(text[start:end])
			if err != nil {
				return nil, false
			}
			fields[name] = v
		case r.Maps[name] != nil:
			mapped, ok := r.Maps[name][text[start:end]]
			if !ok {
				return nil, false
			}
			fields[name] = StringValue(mapped)
		default:
			fields[name] = StringValue(text[start:end])
		}
	}
	return fields, true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// RuleSet is an ordered list of rules. The first matching rule wins.
type RuleSet []Rule

// Parse runs text through the rules in order. A text no rule matches yields a
// Result with Matched false; that is not an error.
func (rs RuleSet) Parse(text string) Result {
	for _, r := range rs {
		if fields, ok := r.match(text); ok {
			return Result{
				Matched:     true,
				Rule:        r.Name,
				Fields:      fields,
				description: r.Description,
			}
		}
	}
	return Result{}
}

// Validate validates every rule of the set.
func (rs RuleSet) Validate() error {
	seen := make(map[string]bool, len(rs))
	for _, r := range rs {
		if err := r.Validate(); err != nil {
			return err
		}
		if seen[r.Name] {
			return fmt.Errorf("duplicate rule %s", r.Name)
		}
		seen[r.Name] = true
	}
	return nil
}
