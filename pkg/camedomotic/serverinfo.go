package camedomotic

// Feature names known to appear in controller feature lists.
const (
	FeatureLights    = "lights"
	FeatureOpenings  = "openings"
	FeatureThermo    = "thermoregulation"
	FeatureScenarios = "scenarios"
	FeatureDigitalIn = "digitalin"
	FeatureEnergy    = "energy"
	FeatureLoadsCtrl = "loadsctrl"
)

// ServerInfo describes a controller: its stable keycode, hardware identity
// and the functional blocks it exposes.
type ServerInfo struct {
	Keycode  string   `json:"keycode"`
	Serial   string   `json:"serial"`
	Software string   `json:"swver"`
	Type     string   `json:"type"`
	Board    string   `json:"board"`
	Features []string `json:"list"`
}
