package guard

import "github.com/pywheeler/pywheeler/model"

type service struct {
	lookupEnv func(string) (string, bool)
}

// Service validates the release target and the process environment before any
// pipeline step runs.
type Service interface {
	Validate(target string, envVar string) (model.TargetType, error)
}
