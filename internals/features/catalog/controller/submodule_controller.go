// file: internals/features/catalog/controller/submodule_controller.go
package controller

import (
	"errors"
	"log"

	catalogDTO "modulku_backend/internals/features/catalog/dto"
	"modulku_backend/internals/features/catalog/repository"
	helper "modulku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

const (
	msgSubmoduleCreateFailed = "Error in submodule creation"
	msgSubmoduleEditFailed   = "Error in submodule edition"
)

type SubmodulesController struct {
	Store     repository.Store
	Validator interface{ Struct(any) error }
	Codes     helper.StatusPolicy
}

func NewSubmodulesController(store repository.Store, v interface{ Struct(any) error }, codes helper.StatusPolicy) *SubmodulesController {
	return &SubmodulesController{Store: store, Validator: v, Codes: codes}
}

// POST /api/createsubmodule
// moduleId is not checked against existing modules.
func (h *SubmodulesController) Create(c *fiber.Ctx) error {
	var p catalogDTO.CreateSubmoduleRequest
	if err := bindBody(c, &p); err != nil {
		return helper.JsonError(c, h.Codes.BadBody, msgInvalidBody)
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonError(c, h.Codes.MissingField, "All fields are required")
	}

	sub, err := h.Store.CreateSubmodule(c.UserContext(), *p.ModuleID, p.SubModuleName, *p.Status)
	switch {
	case errors.Is(err, repository.ErrSubmoduleNameTaken):
		return helper.JsonError(c, h.Codes.Duplicate, "Submodule name already exists")
	case err != nil:
		log.Printf("[SUBMODULES][CREATE] ❌ name=%q: %v", p.SubModuleName, err)
		return helper.JsonError(c, h.Codes.Internal, msgSubmoduleCreateFailed)
	}

	log.Printf("[SUBMODULES][CREATE] ✅ id=%d module=%d name=%q", sub.SubmoduleID, sub.SubmoduleModuleID, sub.SubmoduleName)
	return helper.JsonCreated(c, "Submodule created successfully", sub)
}

// PUT /api/editsubmodule/:id
func (h *SubmodulesController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParseIntLoose(c.Params("id"))
	if !ok {
		return helper.JsonError(c, h.Codes.NotFound, "Sub module not found")
	}

	var p catalogDTO.UpdateSubmoduleRequest
	if err := bindBody(c, &p); err != nil {
		return helper.JsonError(c, h.Codes.BadBody, msgInvalidBody)
	}

	sub, err := h.Store.UpdateSubmodule(c.UserContext(), id, p.ToPatch())
	switch {
	case errors.Is(err, repository.ErrSubmoduleNotFound):
		return helper.JsonError(c, h.Codes.NotFound, "Sub module not found")
	case err != nil:
		log.Printf("[SUBMODULES][UPDATE] ❌ id=%d: %v", id, err)
		return helper.JsonError(c, h.Codes.Internal, msgSubmoduleEditFailed)
	}

	return helper.JsonUpdated(c, "Sub module updated successfully", sub)
}
