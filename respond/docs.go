package respond

import (
	"reflect"
	"sort"
	"strings"

	"github.com/dmitrymomot/apikit/apierror"
)

// BodyDoc describes one declared body shape: the code discriminator, the
// documentation description, and the details type when the descriptor
// declares one.
type BodyDoc struct {
	Code        string
	Description string
	Details     reflect.Type
}

// ResponseDoc describes every declared response for one HTTP status, ready
// for an external schema generator. When several variants share a status
// the entry holds all their body shapes and a description enumerating them.
type ResponseDoc struct {
	Status      int
	Description string
	Bodies      []BodyDoc
}

// Docs enumerates the full response surface of the given taxonomies,
// sorted by status. Descriptors sharing a status code merge into a single
// entry: the bodies concatenate in declaration order and the description
// lists every variant, so documentation for an endpoint can state all
// alternatives a client must be prepared for.
func Docs(taxonomies ...*apierror.Taxonomy) []ResponseDoc {
	byStatus := make(map[int][]BodyDoc)
	for _, tax := range taxonomies {
		if tax == nil {
			continue
		}
		for _, d := range tax.Descriptors() {
			byStatus[d.Status()] = append(byStatus[d.Status()], BodyDoc{
				Code:        d.Code(),
				Description: d.Description(),
				Details:     d.DetailsType(),
			})
		}
	}

	statuses := make([]int, 0, len(byStatus))
	for status := range byStatus {
		statuses = append(statuses, status)
	}
	sort.Ints(statuses)

	docs := make([]ResponseDoc, 0, len(statuses))
	for _, status := range statuses {
		bodies := byStatus[status]
		docs = append(docs, ResponseDoc{
			Status:      status,
			Description: describeStatus(bodies),
			Bodies:      bodies,
		})
	}
	return docs
}

func describeStatus(bodies []BodyDoc) string {
	if len(bodies) == 1 {
		return bodies[0].Description
	}
	var b strings.Builder
	b.WriteString("There are multiple possible responses with this status code:")
	for _, body := range bodies {
		b.WriteString("\n- ")
		b.WriteString(body.Code)
		if body.Description != "" {
			b.WriteString(": ")
			b.WriteString(body.Description)
		}
	}
	return b.String()
}
