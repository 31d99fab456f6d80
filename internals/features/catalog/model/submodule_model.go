// file: internals/features/catalog/model/submodule_model.go
package model

// SubmoduleModel belongs to a module through SubmoduleModuleID. The reference
// is informal: nothing checks that the module exists.
type SubmoduleModel struct {
	SubmoduleID       int    `json:"id"`
	SubmoduleModuleID int    `json:"moduleId"`
	SubmoduleName     string `json:"subModuleName"`
	SubmoduleStatus   int    `json:"status"`
}

type SubmodulePatch struct {
	ModuleID *int
	Name     *string
	Status   *int
}

func (p SubmodulePatch) IsEmpty() bool {
	return p.ModuleID == nil && p.Name == nil && p.Status == nil
}
