package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type builtinScene struct {
	info SceneInfo
	new  func() (*Scene, error)
}

var builtinScenes = map[string]builtinScene{
	"default": {SceneInfo{"default", "Three reflective spheres over a checkerboard floor"}, NewDefaultScene},
	"empty":   {SceneInfo{"empty", "Default camera and no shapes"}, NewEmptyScene},
	"mirrors": {SceneInfo{"mirrors", "A matte sphere between two facing mirrors"}, NewMirrorsScene},
}

// Lookup builds the built-in scene with the given name
func Lookup(name string) (*Scene, error) {
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %q", name)
	}
	return entry.new()
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtinScenes))
	for _, entry := range builtinScenes {
		infos = append(infos, entry.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
