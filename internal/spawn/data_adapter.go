package spawn

import (
	"context"
	"fmt"

	"github.com/hyperscape/hyperscape/internal/data"
	"github.com/hyperscape/hyperscape/internal/model"
)

// DataMobRepo implements MobRepository using the data package's static
// content tables.
type DataMobRepo struct{}

// NewDataMobRepo creates a DataMobRepo adapter.
func NewDataMobRepo() *DataMobRepo {
	return &DataMobRepo{}
}

// LoadTemplate loads a mob template from the static tables by type key.
func (r *DataMobRepo) LoadTemplate(_ context.Context, typeKey string) (*model.MobTemplate, error) {
	def := data.GetMobDef(typeKey)
	if def == nil {
		return nil, fmt.Errorf("mob type %q not found in data", typeKey)
	}
	return def.Template(), nil
}

// DataAreaRepo implements AreaRepository using the data package's static
// content tables.
type DataAreaRepo struct{}

// NewDataAreaRepo creates a DataAreaRepo adapter.
func NewDataAreaRepo() *DataAreaRepo {
	return &DataAreaRepo{}
}

// LoadAll returns all world areas from the static tables.
func (r *DataAreaRepo) LoadAll(_ context.Context) ([]*model.WorldArea, error) {
	areas := data.AllWorldAreas()
	if len(areas) == 0 {
		return nil, fmt.Errorf("no world areas loaded, call data.LoadWorldAreas first")
	}
	return areas, nil
}
