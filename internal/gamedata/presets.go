package gamedata

// PresetDef defines a level preset loaded from JSON. A preset bundles the map
// and projection parameters that make a playable arena; individual fields can
// still be overridden from the environment.
type PresetDef struct {
	ID          string  `json:"id"`          // Unique identifier (e.g., "warren")
	Name        string  `json:"name"`        // Display name (e.g., "The Warren")
	MapWidth    int     `json:"mapWidth"`    // Grid cells across
	MapHeight   int     `json:"mapHeight"`   // Grid cells down
	WallDensity int     `json:"wallDensity"` // Percent chance a cell is a wall
	FOV         float64 `json:"fov"`         // Field of view in degrees
	Slivers     int     `json:"slivers"`     // Rendered columns per frame
	WallColor   string  `json:"wallColor"`   // Hex color for lit walls (e.g., "#5FD75F")
	SkyColor    string  `json:"skyColor"`    // Hex color for the empty band above walls
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]PresetDef, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}

// MustLoadPresets loads preset definitions, panicking on error.
func MustLoadPresets() []PresetDef {
	presets, err := LoadPresets()
	if err != nil {
		panic(err)
	}
	return presets
}
