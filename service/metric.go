package service

import (
	"github.com/viant/fieldly/logger"
	"github.com/viant/gmetric"
	"github.com/viant/gmetric/provider"
	"reflect"
	"strings"
	"time"
)

type metricsLocation struct {
}

func metricLocation() string {
	return reflect.TypeOf(metricsLocation{}).PkgPath()
}

func newCounter(metrics *gmetric.Service, name string) *logger.CounterAdapter {
	if metrics == nil || name == "" {
		return logger.NewCounter(nil)
	}
	name = strings.ReplaceAll(name, "/", ".")
	var counter logger.Counter
	cnt := metrics.LookupOperation(name)
	if cnt == nil {
		counter = metrics.MultiOperationCounter(metricLocation(), name, name+" performance", time.Millisecond, time.Minute, 2, provider.NewBasic())
	} else {
		counter = cnt
	}
	return logger.NewCounter(counter)
}
