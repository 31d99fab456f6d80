// file: internals/features/catalog/dto/submodule_dto.go
package dto

import (
	"strings"

	m "modulku_backend/internals/features/catalog/model"
)

// Presence only: moduleId and status are pointers so that 0 still counts as sent.
type CreateSubmoduleRequest struct {
	ModuleID      *int   `json:"moduleId"      form:"moduleId"      validate:"required"`
	SubModuleName string `json:"subModuleName" form:"subModuleName" validate:"required"`
	Status        *int   `json:"status"        form:"status"        validate:"required"`
}

func (r *CreateSubmoduleRequest) Normalize() {
	r.SubModuleName = strings.TrimSpace(r.SubModuleName)
}

type UpdateSubmoduleRequest struct {
	ModuleID      *int    `json:"moduleId"      form:"moduleId"`
	SubModuleName *string `json:"subModuleName" form:"subModuleName"`
	Status        *int    `json:"status"        form:"status"`
}

func (r UpdateSubmoduleRequest) ToPatch() m.SubmodulePatch {
	var p m.SubmodulePatch
	if r.ModuleID != nil {
		v := *r.ModuleID
		p.ModuleID = &v
	}
	if r.SubModuleName != nil {
		if v := strings.TrimSpace(*r.SubModuleName); v != "" {
			p.Name = &v
		}
	}
	if r.Status != nil {
		v := *r.Status
		p.Status = &v
	}
	return p
}
