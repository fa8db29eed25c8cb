package orchestrator

import (
	"github.com/pywheeler/pywheeler/model"
	"github.com/pywheeler/pywheeler/service/builder"
	"github.com/pywheeler/pywheeler/service/config"
	"github.com/pywheeler/pywheeler/service/guard"
	"github.com/pywheeler/pywheeler/service/installer"
	"github.com/pywheeler/pywheeler/service/output"
	"github.com/pywheeler/pywheeler/service/readme"
	"github.com/pywheeler/pywheeler/service/stamper"
	"github.com/pywheeler/pywheeler/service/storage"
	"go.uber.org/zap"
)

type service struct {
	guardService     guard.Service
	installerService installer.Service
	readmeService    readme.Service
	stamperService   stamper.Service
	builderService   builder.Service
	outputService    output.Service
	storageService   storage.Service
	cfg              config.Config
	versionInfo      model.VersionInfo
	logger           *zap.Logger

	setEnv   func(key, value string) error
	unsetEnv func(key string) error
	idFunc   func() string
}

// Service coordinates the pipeline steps.
type Service interface {
	Orchestrate(flags model.Flags) (model.RunReport, error)
}
