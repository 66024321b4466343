package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 30s", func() {
		go a.SchedSystemMonitorTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@hourly", func() {
		go a.SchedCatalogStatsTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}
}

// StartBackgroundJobs starts the scheduler loop.
func (a *Application) StartBackgroundJobs(ctx context.Context) {
	a.sched.Start()
	go func() {
		<-ctx.Done()
		a.sched.Stop()
	}()
}

// SchedSystemMonitorTask samples host cpu and memory usage.
func (a *Application) SchedSystemMonitorTask() {
	percents, err := cpu.Percent(time.Second, false)
	if err != nil || len(percents) == 0 {
		zap.S().Debugf("cpu sample failed: %v", err)
		return
	}
	vmem, err := mem.VirtualMemory()
	if err != nil {
		zap.S().Debugf("memory sample failed: %v", err)
		return
	}
	zap.L().Debug("system monitor",
		zap.Float64("cpu_percent", percents[0]),
		zap.Float64("mem_percent", vmem.UsedPercent))
}

// SchedCatalogStatsTask logs current collection sizes. The counts come
// through the storage contract so the job works against either backend.
func (a *Application) SchedCatalogStatsTask() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, err := a.store.GetProducts(ctx)
	if err != nil {
		zap.L().Error("catalog stats failed", zap.Error(err))
		return
	}
	categories, err := a.store.GetCategories(ctx)
	if err != nil {
		zap.L().Error("catalog stats failed", zap.Error(err))
		return
	}
	specialties, err := a.store.GetSpecialties(ctx)
	if err != nil {
		zap.L().Error("catalog stats failed", zap.Error(err))
		return
	}

	inStock := 0
	for _, p := range products {
		if p.InStock {
			inStock++
		}
	}

	zap.L().Info("catalog stats",
		zap.Int("products", len(products)),
		zap.Int("in_stock", inStock),
		zap.Int("categories", len(categories)),
		zap.Int("specialties", len(specialties)))
}
