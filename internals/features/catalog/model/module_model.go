// file: internals/features/catalog/model/module_model.go
package model

// StatusActive is what a new module starts with. Any int is storable.
const StatusActive = 1

type ModuleModel struct {
	ModuleID     int    `json:"id"`
	ModuleName   string `json:"moduleName"`
	ModuleStatus int    `json:"status"`
}

// ModulePatch carries the fields an edit actually sets; nil means untouched.
type ModulePatch struct {
	Name   *string
	Status *int
}

func (p ModulePatch) IsEmpty() bool { return p.Name == nil && p.Status == nil }
