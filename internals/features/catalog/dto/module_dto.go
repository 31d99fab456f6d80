// file: internals/features/catalog/dto/module_dto.go
package dto

import (
	"strings"

	m "modulku_backend/internals/features/catalog/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateModuleRequest struct {
	ModuleName string `json:"moduleName" form:"moduleName" validate:"required"`
}

func (r *CreateModuleRequest) Normalize() {
	r.ModuleName = strings.TrimSpace(r.ModuleName)
}

/* =========================================================
   UPDATE (PUT) — partial, a nil field means "not sent"
   ========================================================= */

type UpdateModuleRequest struct {
	ModuleName *string `json:"moduleName" form:"moduleName"`
	Status     *int    `json:"status"     form:"status"`
}

// ToPatch drops an empty moduleName; status 0 is kept.
func (r UpdateModuleRequest) ToPatch() m.ModulePatch {
	var p m.ModulePatch
	if r.ModuleName != nil {
		if v := strings.TrimSpace(*r.ModuleName); v != "" {
			p.Name = &v
		}
	}
	if r.Status != nil {
		v := *r.Status
		p.Status = &v
	}
	return p
}

/* =========================================================
   LISTING
   ========================================================= */

type ModuleListItem struct {
	ModuleID       int                `json:"id"`
	ModuleName     string             `json:"moduleName"`
	ModuleStatus   int                `json:"status"`
	Submodules     []m.SubmoduleModel `json:"submodules"`
	SubmoduleCount int                `json:"submoduleCount"`
}

// BuildModuleListing joins submodules onto their module by moduleId, keeping
// insertion order. Submodules pointing at no module are left out.
func BuildModuleListing(mods []m.ModuleModel, subs []m.SubmoduleModel) []ModuleListItem {
	byModule := make(map[int][]m.SubmoduleModel, len(mods))
	for _, s := range subs {
		byModule[s.SubmoduleModuleID] = append(byModule[s.SubmoduleModuleID], s)
	}

	out := make([]ModuleListItem, 0, len(mods))
	for _, mo := range mods {
		children := byModule[mo.ModuleID]
		if children == nil {
			children = []m.SubmoduleModel{}
		}
		out = append(out, ModuleListItem{
			ModuleID:       mo.ModuleID,
			ModuleName:     mo.ModuleName,
			ModuleStatus:   mo.ModuleStatus,
			Submodules:     children,
			SubmoduleCount: len(children),
		})
	}
	return out
}
