// file: internals/features/catalog/controller/module_controller.go
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
	msgListFailed         = "Error fetching module data in dropdown"
	msgModuleCreateFailed = "Error in module creation"
	msgModuleEditFailed   = "Error in module edition"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type ModulesController struct {
	Store     repository.Store
	Validator interface{ Struct(any) error }
	Codes     helper.StatusPolicy
}

func NewModulesController(store repository.Store, v interface{ Struct(any) error }, codes helper.StatusPolicy) *ModulesController {
	return &ModulesController{Store: store, Validator: v, Codes: codes}
}

// GET / — every module with its submodules joined on moduleId
func (h *ModulesController) List(c *fiber.Ctx) error {
	mods, subs, err := h.Store.Snapshot(c.UserContext())
	if err != nil {
		log.Printf("[MODULES][LIST] ❌ snapshot: %v", err)
		return helper.JsonError(c, h.Codes.Internal, msgListFailed)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":     true,
		"data":        catalogDTO.BuildModuleListing(mods, subs),
		"moduleCount": len(mods),
	})
}

// GET /api/moduledropdown?status=N
// A status that is not a number matches nothing.
func (h *ModulesController) Dropdown(c *fiber.Ctx) error {
	status, ok := helper.ParseIntLoose(c.Query("status"))
	if !ok {
		return helper.JsonData(c, []any{})
	}
	if status == -1 {
		return helper.JsonError(c, h.Codes.InvalidInput, "Invalid status")
	}

	rows, err := h.Store.ModulesByStatus(c.UserContext(), status)
	if err != nil {
		log.Printf("[MODULES][DROPDOWN] ❌ status=%d: %v", status, err)
		return helper.JsonError(c, h.Codes.Internal, msgListFailed)
	}
	return helper.JsonData(c, rows)
}

// POST /api/createmodule
func (h *ModulesController) Create(c *fiber.Ctx) error {
	var p catalogDTO.CreateModuleRequest
	if err := bindBody(c, &p); err != nil {
		return helper.JsonError(c, h.Codes.BadBody, msgInvalidBody)
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonError(c, h.Codes.MissingField, "Module name is required")
	}

	mod, err := h.Store.CreateModule(c.UserContext(), p.ModuleName)
	switch {
	case errors.Is(err, repository.ErrModuleNameTaken):
		return helper.JsonError(c, h.Codes.Duplicate, "Module name already exists")
	case err != nil:
		log.Printf("[MODULES][CREATE] ❌ name=%q: %v", p.ModuleName, err)
		return helper.JsonError(c, h.Codes.Internal, msgModuleCreateFailed)
	}

	log.Printf("[MODULES][CREATE] ✅ id=%d name=%q", mod.ModuleID, mod.ModuleName)
	return helper.JsonCreated(c, "Module created successfully", mod)
}

// PUT /api/editmodule/:id — partial update, no uniqueness check on rename
func (h *ModulesController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParseIntLoose(c.Params("id"))
	if !ok {
		return helper.JsonError(c, h.Codes.NotFound, "Module not found")
	}

	var p catalogDTO.UpdateModuleRequest
	if err := bindBody(c, &p); err != nil {
		return helper.JsonError(c, h.Codes.BadBody, msgInvalidBody)
	}

	mod, err := h.Store.UpdateModule(c.UserContext(), id, p.ToPatch())
	switch {
	case errors.Is(err, repository.ErrModuleNotFound):
		return helper.JsonError(c, h.Codes.NotFound, "Module not found")
	case err != nil:
		log.Printf("[MODULES][UPDATE] ❌ id=%d: %v", id, err)
		return helper.JsonError(c, h.Codes.Internal, msgModuleEditFailed)
	}

	return helper.JsonUpdated(c, "Module updated successfully", mod)
}
