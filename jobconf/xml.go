package jobconf

import (
	"encoding/xml"
	"fmt"
	"strings"

	"aligner/report"
)

// xmlElement is a generic element tree: tag, character data, and child
// elements in document order.
type xmlElement struct {
	XMLName  xml.Name
	Text     string       `xml:",chardata"`
	Children []xmlElement `xml:",any"`
}

// parseXMLRoot decodes contents into an element tree rooted at the
// document's top element. It returns the decode error untouched; the
// exported entry points map it into the report.
func parseXMLRoot(contents []byte) (*xmlElement, error) {
	var root xmlElement
	if err := xml.Unmarshal(contents, &root); err != nil {
		return nil, err
	}
	return &root, nil
}

// xmlFailed records an XML parse failure on rep: the report is marked
// failed and exactly one error is appended.
func xmlFailed(rep *report.Report, err error) {
	if rep == nil {
		return
	}
	rep.MarkFailed()
	rep.AddError(fmt.Sprintf("failed to parse XML config: %v", err))
}

// MappingFromXMLJob parses contents as an XML job configuration and
// returns the job-level mapping.
//
// Each direct child of the root element contributes one key=value pair,
// tag as key and trimmed text as value. The tasks container element and
// elements without text content are skipped silently, as are elements
// whose text trims away entirely; rep only ever receives XML-level
// failures, never pair warnings. On any parse failure rep is marked
// failed, one error is recorded, and an empty mapping is returned; the
// failure never propagates as a panic or an error return.
func (c Codec) MappingFromXMLJob(contents []byte, rep *report.Report) map[string]string {
	root, err := parseXMLRoot(contents)
	if err != nil {
		xmlFailed(rep, err)
		return map[string]string{}
	}

	var pairs []string
	for _, elem := range root.Children {
		if elem.XMLName.Local == c.TasksTag || elem.Text == "" {
			continue
		}
		pairs = append(pairs, elem.XMLName.Local+c.AssignmentSeparator+strings.TrimSpace(elem.Text))
	}
	return c.MappingFromPairs(pairs, nil)
}

// MappingsFromXMLTasks parses contents as an XML job configuration and
// returns one mapping per task element, in document order.
//
// Only children of the tasks container whose tag matches the task tag
// are considered; each is converted exactly like a job element. Callers
// rely on the positional correspondence between the returned mappings
// and the source task order. A parse failure, including a missing tasks
// container, marks rep failed, records one error, and returns nil.
func (c Codec) MappingsFromXMLTasks(contents []byte, rep *report.Report) []map[string]string {
	root, err := parseXMLRoot(contents)
	if err != nil {
		xmlFailed(rep, err)
		return nil
	}

	container := findChild(root, c.TasksTag)
	if container == nil {
		xmlFailed(rep, fmt.Errorf("missing %q container element", c.TasksTag))
		return nil
	}

	var mappings []map[string]string
	for _, task := range container.Children {
		if task.XMLName.Local != c.TaskTag {
			continue
		}
		var pairs []string
		for _, elem := range task.Children {
			if elem.Text == "" {
				continue
			}
			pairs = append(pairs, elem.XMLName.Local+c.AssignmentSeparator+strings.TrimSpace(elem.Text))
		}
		mappings = append(mappings, c.MappingFromPairs(pairs, nil))
	}
	return mappings
}

// findChild returns the first direct child of parent with the given
// local tag name, or nil.
func findChild(parent *xmlElement, tag string) *xmlElement {
	for i := range parent.Children {
		if parent.Children[i].XMLName.Local == tag {
			return &parent.Children[i]
		}
	}
	return nil
}
