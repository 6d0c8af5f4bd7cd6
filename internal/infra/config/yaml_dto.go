package config

// YAMLConfig mirrors .setop.yaml. Pointer fields distinguish "unset" from
// the zero value so partial files keep the built-in defaults.
type YAMLConfig struct {
	Setop struct {
		Multiset  *bool   `yaml:"multiset"`
		Delimiter *string `yaml:"delimiter"`
		Newlines  string  `yaml:"newlines"`
		Log       YAMLLog `yaml:"log"`
	} `yaml:"setop"`
}

type YAMLLog struct {
	Debug *bool  `yaml:"debug"`
	File  string `yaml:"file"`
}
