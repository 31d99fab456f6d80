package dto

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "modulku_backend/internals/features/catalog/model"
)

func TestUpdateModuleRequestToPatch(t *testing.T) {
	var req UpdateModuleRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"status":0}`), &req))
	p := req.ToPatch()
	assert.Nil(t, p.Name)
	require.NotNil(t, p.Status)
	assert.Equal(t, 0, *p.Status)

	req = UpdateModuleRequest{}
	require.NoError(t, sonic.Unmarshal([]byte(`{"moduleName":"  ","status":null}`), &req))
	assert.True(t, req.ToPatch().IsEmpty())

	req = UpdateModuleRequest{}
	require.NoError(t, sonic.Unmarshal([]byte(`{"moduleName":"Robotics"}`), &req))
	p = req.ToPatch()
	require.NotNil(t, p.Name)
	assert.Equal(t, "Robotics", *p.Name)
	assert.Nil(t, p.Status)
}

func TestCreateSubmoduleRequestValidation(t *testing.T) {
	v := validator.New()

	var ok CreateSubmoduleRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"moduleId":1,"subModuleName":"Graphs","status":0}`), &ok))
	ok.Normalize()
	assert.NoError(t, v.Struct(ok), "status 0 is present")

	var missing CreateSubmoduleRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"subModuleName":"Graphs"}`), &missing))
	assert.Error(t, v.Struct(missing))

	var blank CreateSubmoduleRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"moduleId":1,"subModuleName":"   ","status":1}`), &blank))
	blank.Normalize()
	assert.Error(t, v.Struct(blank))
}

func TestUpdateSubmoduleRequestToPatch(t *testing.T) {
	var req UpdateSubmoduleRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"moduleId":3,"subModuleName":"Trees","status":0}`), &req))
	p := req.ToPatch()
	require.NotNil(t, p.ModuleID)
	require.NotNil(t, p.Name)
	require.NotNil(t, p.Status)
	assert.Equal(t, 3, *p.ModuleID)
	assert.Equal(t, "Trees", *p.Name)
	assert.Equal(t, 0, *p.Status)

	assert.True(t, UpdateSubmoduleRequest{}.ToPatch().IsEmpty())
}

func TestBuildModuleListing(t *testing.T) {
	mods := []m.ModuleModel{
		{ModuleID: 1, ModuleName: "computer science", ModuleStatus: 1},
		{ModuleID: 2, ModuleName: "information technology", ModuleStatus: 1},
		{ModuleID: 3, ModuleName: "civil engineering", ModuleStatus: 1},
	}
	subs := []m.SubmoduleModel{
		{SubmoduleID: 1, SubmoduleModuleID: 1, SubmoduleName: "database management", SubmoduleStatus: 1},
		{SubmoduleID: 2, SubmoduleModuleID: 2, SubmoduleName: "automata theory", SubmoduleStatus: 1},
		{SubmoduleID: 3, SubmoduleModuleID: 1, SubmoduleName: "compilers", SubmoduleStatus: 0},
		{SubmoduleID: 4, SubmoduleModuleID: 99, SubmoduleName: "orphan", SubmoduleStatus: 1},
	}

	items := BuildModuleListing(mods, subs)
	require.Len(t, items, 3)

	assert.Equal(t, 2, items[0].SubmoduleCount)
	assert.Equal(t, []int{1, 3}, []int{items[0].Submodules[0].SubmoduleID, items[0].Submodules[1].SubmoduleID})
	assert.Equal(t, 1, items[1].SubmoduleCount)
	assert.Equal(t, 0, items[2].SubmoduleCount)
	assert.NotNil(t, items[2].Submodules)

	raw, err := sonic.Marshal(items[2])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"moduleName":"civil engineering","status":1,"submodules":[],"submoduleCount":0}`, string(raw))
}
