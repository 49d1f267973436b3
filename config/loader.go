package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// EnvConfigFile names an explicit config file and skips the directory search.
const EnvConfigFile = "GIFTSHOP_CONFIG_FILE"

// Load reads <name>.yaml from the working directory or one of dirs (relative
// to it), then overlays environment variables. POSTGRES_MASTER_USERNAME maps
// onto postgres.master.userName by matching the keys already in the file.
func Load[T any](name string, dirs ...string) (*T, error) {
	path, err := locate(name, dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s failed", path)
	}

	fromFile := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fromFile), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s failed", path)
	}

	return cfg, nil
}

func locate(name string, dirs []string) (string, error) {
	if explicit := os.Getenv(EnvConfigFile); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, "%s points to an unreadable file", EnvConfigFile)
		}

		return explicit, nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	candidates := []string{pwd}
	for _, dir := range dirs {
		candidates = append(candidates, filepath.Join(pwd, dir))
	}
	for _, dir := range candidates {
		path := filepath.Join(dir, name+".yaml")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in %s", name, strings.Join(candidates, ", "))
}

// canonicalizeEnvKey turns SECRETKEY_ACCESS into secretKey.access, reusing the
// spelling of keys present in existing and lowercasing the rest.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	var path []string
	level := existing

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child := matchKey(level, segment)
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

func matchKey(level map[string]any, segment string) (string, map[string]any) {
	want := foldKey(segment)
	for key, value := range level {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first index without a host and port.
func replicasFromEnv(lookup func(string) (string, bool)) []postgres.ConnectionConfig {
	get := func(key string) string {
		value, _ := lookup(key)

		return value
	}

	var replicas []postgres.ConnectionConfig
	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"
		host, port := get(prefix+"HOST"), get(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: get(prefix + "USERNAME"),
			Password: get(prefix + "PASSWORD"),
		})
	}
}
