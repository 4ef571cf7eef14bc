package store

import (
	"encoding/json"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
)

// encode and decode are shared by the backends that keep projects as JSON
// blobs.

func encode(p *drawing.Project) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, storageErr(err, "encode project %s", p.ID)
	}
	return data, nil
}

func decode(data []byte) (*drawing.Project, error) {
	var p drawing.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, storageErr(err, "decode project")
	}
	return &p, nil
}
