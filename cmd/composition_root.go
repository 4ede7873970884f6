package cmd

import (
	"agrimarket/internal/adapters/out/postgres"
	"agrimarket/internal/core/application/usecases/commands"
	"agrimarket/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateAddStockCommandHandler() commands.AddStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddStockCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmCapacityCommandHandler() commands.ConfirmCapacityCommandHandler {
	var f commands.CapacityUoWFactory = FuncCapacityUoWFactory(func() commands.CapacityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmCapacityCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignLogisticsCommandHandler() commands.AssignLogisticsCommandHandler {
	var f commands.LogisticsUoWFactory = FuncLogisticsUoWFactory(func() commands.LogisticsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignLogisticsCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateLogisticsStatusCommandHandler() commands.UpdateLogisticsStatusCommandHandler {
	var f commands.LogisticsUoWFactory = FuncLogisticsUoWFactory(func() commands.LogisticsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateLogisticsStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetStockQueryHandler() queries.GetStockQueryHandler {
	return queries.NewGetStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLogisticsQueryHandler() queries.GetLogisticsQueryHandler {
	return queries.NewGetLogisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKPIReportQueryHandler() queries.GetKPIReportQueryHandler {
	return queries.NewGetKPIReportQueryHandler(c.gormDB)
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCapacityUoWFactory func() commands.CapacityUoW

func (f FuncCapacityUoWFactory) Create() commands.CapacityUoW {
	return f()
}

type FuncLogisticsUoWFactory func() commands.LogisticsUoW

func (f FuncLogisticsUoWFactory) Create() commands.LogisticsUoW {
	return f()
}
