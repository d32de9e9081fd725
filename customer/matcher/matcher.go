// Package matcher finds likely duplicate customers while a job draft is
// being composed. It is advisory only: the store enforces no uniqueness,
// the matcher just keeps a rep from typing in the same homeowner twice.
package matcher

import (
	"strings"

	"github.com/monsalvellc/RoofingLeadApp/customer/domain"
)

// FindCandidates returns customers whose first+last name contains the
// query, case-insensitively, in store order. Spaces in the query are
// dropped before matching, so "na rey" spans the first/last boundary of
// "Nancy Reyes"; this also lets "hn sm" match "John Smith", which is
// acceptable for a duplicate hint. It reads only the provided list, is
// recomputed from scratch per call (screens invoke it per keystroke) and
// never queries the store itself. An empty query matches nothing.
func FindCandidates(nameQuery string, customers []*domain.Customer) []*domain.Customer {
	query := strings.ToLower(strings.TrimSpace(nameQuery))
	if query == "" {
		return nil
	}

	var candidates []*domain.Customer

	for _, customer := range customers {
		if customer == nil || customer.Deleted {
			continue
		}

		name := strings.ToLower(customer.FirstName + customer.LastName)
		if strings.Contains(name, strings.ReplaceAll(query, " ", "")) {
			candidates = append(candidates, customer)
		}
	}

	return candidates
}
