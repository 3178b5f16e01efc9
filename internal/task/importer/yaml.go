// Package importer reads task trees from YAML documents.
package importer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"taskboard-backend/internal/domain"
	"taskboard-backend/pkg/validation"

	"gopkg.in/yaml.v3"
)

const MaxTasks = 500

// YAMLTask represents a single task in the YAML input.
type YAMLTask struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description,omitempty"`
	DueDate     string     `yaml:"due_date,omitempty"`
	Priority    string     `yaml:"priority,omitempty"`
	Labels      []string   `yaml:"labels,omitempty"`
	Children    []YAMLTask `yaml:"children,omitempty"`
}

// YAMLInput represents the root structure of the YAML input.
type YAMLInput struct {
	Tasks []YAMLTask `yaml:"tasks"`
}

// Node is a validated task ready to be stored.
type Node struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    domain.Priority
	Labels      []string
	Children    []Node
}

// Parse validates the whole document before anything is written. Dates may
// be RFC 3339 or YYYY-MM-DD, the latter meaning midnight in loc.
func Parse(data []byte, loc *time.Location) ([]Node, error) {
	var input YAMLInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	if len(input.Tasks) == 0 {
		return nil, errors.New("no tasks found in YAML")
	}

	count := 0
	nodes := make([]Node, 0, len(input.Tasks))
	for _, yt := range input.Tasks {
		n, err := convert(yt, loc, &count)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func convert(yt YAMLTask, loc *time.Location, count *int) (Node, error) {
	title := strings.TrimSpace(yt.Title)
	if title == "" {
		return Node{}, errors.New("task title is required")
	}
	*count++
	if *count > MaxTasks {
		return Node{}, fmt.Errorf("import is limited to %d tasks", MaxTasks)
	}

	n := Node{
		Title:       title,
		Description: yt.Description,
		Priority:    domain.PriorityMedium,
	}

	if yt.Priority != "" {
		p := domain.Priority(strings.ToUpper(yt.Priority))
		switch p {
		case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
			n.Priority = p
		default:
			return Node{}, fmt.Errorf("task %q: priority must be one of [LOW MEDIUM HIGH]", title)
		}
	}

	if yt.DueDate != "" {
		due, err := parseDue(yt.DueDate, loc)
		if err != nil {
			return Node{}, fmt.Errorf("task %q: invalid due_date %q", title, yt.DueDate)
		}
		n.DueDate = &due
	}

	seen := map[string]bool{}
	for _, name := range yt.Labels {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		n.Labels = append(n.Labels, name)
	}

	for _, child := range yt.Children {
		c, err := convert(child, loc, count)
		if err != nil {
			return Node{}, err
		}
		n.Children = append(n.Children, c)
	}
	return n, nil
}

func parseDue(s string, loc *time.Location) (time.Time, error) {
	if t, err := validation.ParseTime(s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// LabelNames lists every distinct label used in the tree, in first-seen order.
func LabelNames(nodes []Node) []string {
	var names []string
	seen := map[string]bool{}
	var walk func([]Node)
	walk = func(ns []Node) {
		for _, n := range ns {
			for _, l := range n.Labels {
				if !seen[l] {
					seen[l] = true
					names = append(names, l)
				}
			}
			walk(n.Children)
		}
	}
	walk(nodes)
	return names
}

var palette = []string{"#EF4444", "#F97316", "#EAB308", "#22C55E", "#06B6D4", "#3B82F6", "#8B5CF6", "#EC4899"}

// PaletteColor picks a color for the i-th label created by an import.
func PaletteColor(i int) string {
	return palette[i%len(palette)]
}
