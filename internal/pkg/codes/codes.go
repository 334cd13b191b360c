// Package codes formats the human-readable, tenant-namespaced codes stamped
// on employees, machines and rental areas. The sequence number comes from the
// per-company counter row, never from counting existing records.
package codes

import "fmt"

type ResourceType string

const (
	ResourceEmployee   ResourceType = "employee"
	ResourceMachine    ResourceType = "machine"
	ResourceRentalArea ResourceType = "rental_area"
)

var tags = map[ResourceType]string{
	ResourceEmployee:   "EMP",
	ResourceMachine:    "MCH",
	ResourceRentalArea: "ARE",
}

// Format builds a code like "ACME-EMP-007" from the company's short code and
// the counter value. Sequences above 999 keep their full width.
func Format(companyCode string, resource ResourceType, seq int64) string {
	return fmt.Sprintf("%s-%s-%03d", companyCode, tags[resource], seq)
}
