package pages

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"testdesk/models"
	"testdesk/services"
	"testdesk/tools"
)

/************************************************
/**** MARK: HIERARCHY LEVELS ****/
/************************************************/
const LEVEL_MODULE = "module"
const LEVEL_SUB_MODULE = "sub_module"
const LEVEL_FEATURE = "feature"

const modulesEmptyState = "No modules found. Create your first module to get started."

// HierarchyAPIs are the services the Modules page talks to.
type HierarchyAPIs struct {
	Modules    services.ModulesAPI
	SubModules services.SubModulesAPI
	Features   services.FeaturesAPI
	TestCases  services.TestCasesAPI
}

// Target points at one node of the tree the way the page addresses it:
// module by id, sub-module and feature by name inside their parent.
type Target struct {
	Level     string `json:"level" form:"level"`
	ModuleID  int64  `json:"module_id" form:"module_id"`
	SubModule string `json:"sub_module,omitempty" form:"sub_module"`
	Feature   string `json:"feature,omitempty" form:"feature"`
}

type HierarchyDialog struct {
	Level    string            `json:"level"`
	Mode     string            `json:"mode"` // create|edit
	ParentID int64             `json:"parent_id,omitempty"`
	TargetID int64             `json:"target_id,omitempty"`
	Form     models.ModuleForm `json:"form"`
	Error    string            `json:"error,omitempty"`
}

type PendingDelete struct {
	Level string `json:"level"`
	ID    int64  `json:"id"`
	Name  string `json:"name"`
}

// HierarchyView is the view state of the Modules page.
type HierarchyView struct {
	Modules            []models.Module
	Hierarchy          models.Hierarchy
	ExpandedModules    map[int64]bool
	ExpandedSubModules map[string]bool
	Dialog             *HierarchyDialog
	PendingDelete      *PendingDelete
	Alert              string
}

func SubModuleKey(moduleID int64, subModule string) string {
	return fmt.Sprintf("%d_%s", moduleID, subModule)
}

// Mount discards every piece of state, expand flags included, and fetches.
func (v *HierarchyView) Mount(ctx context.Context, apis HierarchyAPIs) error {
	v.Reset()
	return v.Reload(ctx, apis)
}

func (v *HierarchyView) Reset() {
	*v = HierarchyView{
		Hierarchy:          models.Hierarchy{},
		ExpandedModules:    map[int64]bool{},
		ExpandedSubModules: map[string]bool{},
	}
}

// Reload refetches the module list and the hierarchy map. Expand flags are
// kept so the tree does not collapse after an edit.
func (v *HierarchyView) Reload(ctx context.Context, apis HierarchyAPIs) error {
	if v.ExpandedModules == nil {
		v.ExpandedModules = map[int64]bool{}
	}
	if v.ExpandedSubModules == nil {
		v.ExpandedSubModules = map[string]bool{}
	}

	modules, errModules := apis.Modules.List(ctx)
	if errModules != nil {
		modules = nil
	}
	v.Modules = modules

	hierarchy, errHierarchy := apis.TestCases.Hierarchy(ctx)
	if errHierarchy != nil || hierarchy == nil {
		hierarchy = models.Hierarchy{}
	}
	v.Hierarchy = hierarchy

	err := errors.Join(loadErr("modules", errModules), loadErr("hierarchy", errHierarchy))
	if err != nil {
		first := errModules
		if first == nil {
			first = errHierarchy
		}
		v.Alert = "Failed to load modules: " + tools.ErrorMessage(first)
	}
	return err
}

func (v *HierarchyView) ToggleModule(moduleID int64) bool {
	if v.ExpandedModules == nil {
		v.ExpandedModules = map[int64]bool{}
	}
	v.ExpandedModules[moduleID] = !v.ExpandedModules[moduleID]
	return v.ExpandedModules[moduleID]
}

func (v *HierarchyView) ToggleSubModule(moduleID int64, subModule string) bool {
	if v.ExpandedSubModules == nil {
		v.ExpandedSubModules = map[string]bool{}
	}
	key := SubModuleKey(moduleID, subModule)
	v.ExpandedSubModules[key] = !v.ExpandedSubModules[key]
	return v.ExpandedSubModules[key]
}

func (v *HierarchyView) module(id int64) (models.Module, bool) {
	for _, m := range v.Modules {
		if m.ID == id {
			return m, true
		}
	}
	return models.Module{}, false
}

func (v *HierarchyView) subModule(moduleID int64, name string) (models.HierarchySubModule, bool) {
	m, ok := v.module(moduleID)
	if !ok {
		return models.HierarchySubModule{}, false
	}
	sub, ok := v.Hierarchy[m.Name].SubModules[name]
	return sub, ok
}

func (v *HierarchyView) feature(moduleID int64, subModule, name string) (models.FeatureEntry, bool) {
	sub, ok := v.subModule(moduleID, subModule)
	if !ok {
		return models.FeatureEntry{}, false
	}
	for _, f := range sub.Features {
		if f.Name == name {
			return f, true
		}
	}
	return models.FeatureEntry{}, false
}

func (v *HierarchyView) legacy(action, what string) error {
	v.Alert = fmt.Sprintf("Cannot %s legacy %s without ID", action, what)
	return models.ErrLegacyEntity
}

// OpenCreate opens the create dialog for a level. Sub-modules hang off
// target.ModuleID; features need the id of their sub-module.
func (v *HierarchyView) OpenCreate(t Target) error {
	d := &HierarchyDialog{Level: t.Level, Mode: "create"}
	switch t.Level {
	case LEVEL_MODULE:
	case LEVEL_SUB_MODULE:
		if _, ok := v.module(t.ModuleID); !ok {
			return models.ErrNotFound
		}
		d.ParentID = t.ModuleID
	case LEVEL_FEATURE:
		sub, ok := v.subModule(t.ModuleID, t.SubModule)
		if !ok {
			return models.ErrNotFound
		}
		if sub.IsLegacy() {
			return v.legacy("add features to", "sub-module")
		}
		d.ParentID = sub.ID
	default:
		return fmt.Errorf("%w: unknown level %q", ErrInvalidAction, t.Level)
	}
	v.Dialog = d
	return nil
}

func (v *HierarchyView) OpenEdit(t Target) error {
	d := &HierarchyDialog{Level: t.Level, Mode: "edit"}
	switch t.Level {
	case LEVEL_MODULE:
		m, ok := v.module(t.ModuleID)
		if !ok {
			return models.ErrNotFound
		}
		d.TargetID = m.ID
		d.Form = models.ModuleForm{Name: m.Name, Description: m.Description}
	case LEVEL_SUB_MODULE:
		sub, ok := v.subModule(t.ModuleID, t.SubModule)
		if !ok {
			return models.ErrNotFound
		}
		if sub.IsLegacy() {
			return v.legacy("edit", "sub-module")
		}
		d.TargetID = sub.ID
		d.ParentID = t.ModuleID
		d.Form = models.ModuleForm{Name: t.SubModule, ParentID: t.ModuleID}
	case LEVEL_FEATURE:
		f, ok := v.feature(t.ModuleID, t.SubModule, t.Feature)
		if !ok {
			return models.ErrNotFound
		}
		if f.IsLegacy() {
			return v.legacy("edit", "feature")
		}
		d.TargetID = f.ID
		d.Form = models.ModuleForm{Name: f.Name, Description: f.Description}
	default:
		return fmt.Errorf("%w: unknown level %q", ErrInvalidAction, t.Level)
	}
	v.Dialog = d
	return nil
}

func (v *HierarchyView) CloseDialog() {
	v.Dialog = nil
}

func ValidateName(level, name string) string {
	if strings.TrimSpace(name) != "" {
		return ""
	}
	switch level {
	case LEVEL_SUB_MODULE:
		return "Sub-module name is required"
	case LEVEL_FEATURE:
		return "Feature name is required"
	default:
		return "Module name is required"
	}
}

// SubmitDialog saves the open dialog and reloads list and hierarchy.
func (v *HierarchyView) SubmitDialog(ctx context.Context, apis HierarchyAPIs, form models.ModuleForm) error {
	if v.Dialog == nil {
		return fmt.Errorf("%w: no dialog open", ErrInvalidAction)
	}
	d := v.Dialog
	d.Form = form
	if msg := ValidateName(d.Level, form.Name); msg != "" {
		d.Error = msg
		return ErrValidation
	}

	var err error
	switch d.Level {
	case LEVEL_MODULE:
		if d.Mode == "edit" {
			_, err = apis.Modules.Update(ctx, d.TargetID, form)
		} else {
			_, err = apis.Modules.Create(ctx, form)
		}
	case LEVEL_SUB_MODULE:
		if d.Mode == "edit" {
			_, err = apis.SubModules.Update(ctx, d.TargetID, form)
		} else {
			_, err = apis.SubModules.Create(ctx, d.ParentID, form)
		}
	case LEVEL_FEATURE:
		if d.Mode == "edit" {
			_, err = apis.Features.Update(ctx, d.TargetID, form)
		} else {
			_, err = apis.Features.Create(ctx, d.ParentID, form)
		}
	}
	if err != nil {
		d.Error = tools.ErrorMessage(err)
		v.Alert = fmt.Sprintf("Failed to save %s: %s", levelLabel(d.Level), tools.ErrorMessage(err))
		return err
	}

	v.Dialog = nil
	v.Alert = ""
	return v.Reload(ctx, apis)
}

// RequestDelete asks for confirmation. Legacy nodes are refused right away.
func (v *HierarchyView) RequestDelete(t Target) error {
	p := &PendingDelete{Level: t.Level}
	switch t.Level {
	case LEVEL_MODULE:
		m, ok := v.module(t.ModuleID)
		if !ok {
			return models.ErrNotFound
		}
		p.ID, p.Name = m.ID, m.Name
	case LEVEL_SUB_MODULE:
		sub, ok := v.subModule(t.ModuleID, t.SubModule)
		if !ok {
			return models.ErrNotFound
		}
		if sub.IsLegacy() {
			return v.legacy("delete", "sub-module")
		}
		p.ID, p.Name = sub.ID, t.SubModule
	case LEVEL_FEATURE:
		f, ok := v.feature(t.ModuleID, t.SubModule, t.Feature)
		if !ok {
			return models.ErrNotFound
		}
		if f.IsLegacy() {
			return v.legacy("delete", "feature")
		}
		p.ID, p.Name = f.ID, f.Name
	default:
		return fmt.Errorf("%w: unknown level %q", ErrInvalidAction, t.Level)
	}
	v.PendingDelete = p
	return nil
}

func (v *HierarchyView) CancelDelete() {
	v.PendingDelete = nil
}

func (v *HierarchyView) ConfirmDelete(ctx context.Context, apis HierarchyAPIs) error {
	p := v.PendingDelete
	if p == nil {
		return fmt.Errorf("%w: nothing selected for deletion", ErrInvalidAction)
	}
	v.PendingDelete = nil
	if p.ID <= 0 {
		return v.legacy("delete", levelLabel(p.Level))
	}

	var err error
	switch p.Level {
	case LEVEL_MODULE:
		err = apis.Modules.Delete(ctx, p.ID)
	case LEVEL_SUB_MODULE:
		err = apis.SubModules.Delete(ctx, p.ID)
	case LEVEL_FEATURE:
		err = apis.Features.Delete(ctx, p.ID)
	}
	if err != nil {
		v.Alert = fmt.Sprintf("Failed to delete %s: %s", levelLabel(p.Level), tools.ErrorMessage(err))
		return err
	}
	v.Alert = ""
	return v.Reload(ctx, apis)
}

func levelLabel(level string) string {
	switch level {
	case LEVEL_SUB_MODULE:
		return "sub-module"
	case LEVEL_FEATURE:
		return "feature"
	default:
		return "module"
	}
}

/************************************************
/**** MARK: SNAPSHOT ****/
/************************************************/

type SubModuleCard struct {
	Key          string                `json:"key"`
	Name         string                `json:"name"`
	ID           int64                 `json:"id,omitempty"`
	Legacy       bool                  `json:"legacy"`
	Expanded     bool                  `json:"expanded"`
	FeatureCount int                   `json:"feature_count"`
	Features     []models.FeatureEntry `json:"features,omitempty"`
}

type ModuleCard struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	CreatedAt      string          `json:"created_at,omitempty"`
	Expanded       bool            `json:"expanded"`
	SubModuleCount int             `json:"sub_module_count"`
	SubModules     []SubModuleCard `json:"sub_modules,omitempty"`
}

type ModulesSnapshot struct {
	Cards         []ModuleCard     `json:"cards"`
	EmptyState    string           `json:"empty_state,omitempty"`
	Alert         string           `json:"alert,omitempty"`
	Dialog        *HierarchyDialog `json:"dialog,omitempty"`
	ConfirmDelete *PendingDelete   `json:"confirm_delete,omitempty"`
}

// Snapshot renders one card per module. Children are only listed for
// expanded nodes; counts are always present.
func (v *HierarchyView) Snapshot() ModulesSnapshot {
	snap := ModulesSnapshot{Cards: make([]ModuleCard, 0, len(v.Modules)), Alert: v.Alert}
	for _, m := range v.Modules {
		node := v.Hierarchy[m.Name]
		card := ModuleCard{
			ID:             m.ID,
			Name:           m.Name,
			Description:    m.Description,
			CreatedAt:      m.CreatedAt,
			Expanded:       v.ExpandedModules[m.ID],
			SubModuleCount: len(node.SubModules),
		}
		if card.Expanded {
			names := make([]string, 0, len(node.SubModules))
			for name := range node.SubModules {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				sub := node.SubModules[name]
				key := SubModuleKey(m.ID, name)
				sc := SubModuleCard{
					Key:          key,
					Name:         name,
					ID:           sub.ID,
					Legacy:       sub.IsLegacy(),
					Expanded:     v.ExpandedSubModules[key],
					FeatureCount: len(sub.Features),
				}
				if sc.Expanded {
					sc.Features = append([]models.FeatureEntry{}, sub.Features...)
				}
				card.SubModules = append(card.SubModules, sc)
			}
		}
		snap.Cards = append(snap.Cards, card)
	}
	if len(snap.Cards) == 0 {
		snap.EmptyState = modulesEmptyState
	}
	if v.Dialog != nil {
		d := *v.Dialog
		snap.Dialog = &d
	}
	if v.PendingDelete != nil {
		p := *v.PendingDelete
		snap.ConfirmDelete = &p
	}
	return snap
}
