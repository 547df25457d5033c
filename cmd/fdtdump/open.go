package main

import (
	"github.com/deploymenttheory/go-fdt/fdt"
	"github.com/deploymenttheory/go-fdt/fdt/metrics"
	"github.com/deploymenttheory/go-fdt/fdt/obslog"
	"github.com/deploymenttheory/go-fdt/internal/host"
	"github.com/spf13/viper"
)

// openParser maps path, then initializes a *fdt.Parser against it,
// honoring --arena-size/--verbose/--quiet. The returned cleanup must be
// called once the parser is no longer needed; it tears down the parser
// and unmaps the blob.
func openParser(path string) (p *fdt.Parser, cleanup func(), err error) {
	blob, err := mapFile(path)
	if err != nil {
		return nil, nil, err
	}

	log := obslog.New()
	log.Verbose = viper.GetBool("verbose")
	log.Quiet = viper.GetBool("quiet")

	p = fdt.NewParser()
	ops := host.Dynamic()
	ops.Log = log
	ops.Metrics = metrics.New(nil)

	if size := viper.GetInt("arena-size"); size > 0 {
		staticBuf := make([]byte, size)
		err = p.InitStatic(blob.data, staticBuf, ops)
	} else {
		err = p.Init(blob.data, ops)
	}
	if err != nil {
		blob.Close()
		return nil, nil, err
	}

	return p, func() {
		p.Teardown()
		blob.Close()
	}, nil
}
