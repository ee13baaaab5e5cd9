package models

// Module is the top level of the test hierarchy (module → sub-module → feature).
type Module struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// SubModule belongs to a Module by module_id.
type SubModule struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	ModuleID    int64  `json:"module_id" form:"module_id"`
}

// Feature belongs to a SubModule by sub_module_id.
type Feature struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	SubModuleID int64  `json:"sub_module_id" form:"sub_module_id"`
}

// ModuleForm is what the module dialog submits. It is also used for
// sub-modules and features, with ParentID carrying module_id or sub_module_id.
type ModuleForm struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	ParentID    int64  `json:"parent_id" form:"parent_id"`
}
