// Code generated by gorm.io/gen. DO NOT EDIT.
// Code generated by gorm.io/gen. DO NOT EDIT.
// Code generated by gorm.io/gen. DO NOT EDIT.

package query

import (
	"context"
	"courier/internal/infra/persistence/model"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"gorm.io/gen"
	"gorm.io/gen/field"

	"gorm.io/plugin/dbresolver"
)

func newProductModel(db *gorm.DB, opts ...gen.DOOption) productModel {
	_productModel := productModel{}

	_productModel.productModelDo.UseDB(db, opts...)
	_productModel.productModelDo.UseModel(&model.ProductModel{})

	tableName := _productModel.productModelDo.TableName()
	_productModel.ALL = field.NewAsterisk(tableName)
	_productModel.ID = field.NewField(tableName, "id")
	_productModel.Name = field.NewString(tableName, "name")
	_productModel.Quantity = field.NewInt(tableName, "quantity")
	_productModel.Price = field.NewField(tableName, "price")
	_productModel.Unit = field.NewString(tableName, "unit")
	_productModel.Barcode = field.NewString(tableName, "barcode")
	_productModel.ExpiryDate = field.NewField(tableName, "expiry_date")
	_productModel.CreatedAt = field.NewTime(tableName, "created_at")
	_productModel.UpdatedAt = field.NewTime(tableName, "updated_at")

	_productModel.fillFieldMap()

	return _productModel
}

type productModel struct {
	productModelDo productModelDo

	ALL        field.Asterisk
	ID         field.Field
	Name       field.String
	Quantity   field.Int
	Price      field.Field
	Unit       field.String
	Barcode    field.String
	ExpiryDate field.Field
	CreatedAt  field.Time
	UpdatedAt  field.Time

	fieldMap map[string]field.Expr
}

func (p productModel) Table(newTableName string) *productModel {
	p.productModelDo.UseTable(newTableName)
	return p.updateTableName(newTableName)
}

func (p productModel) As(alias string) *productModel {
	p.productModelDo.DO = *(p.productModelDo.As(alias).(*gen.DO))
	return p.updateTableName(alias)
}

func (p *productModel) updateTableName(table string) *productModel {
	p.ALL = field.NewAsterisk(table)
	p.ID = field.NewField(table, "id")
	p.Name = field.NewString(table, "name")
	p.Quantity = field.NewInt(table, "quantity")
	p.Price = field.NewField(table, "price")
	p.Unit = field.NewString(table, "unit")
	p.Barcode = field.NewString(table, "barcode")
	p.ExpiryDate = field.NewField(table, "expiry_date")
	p.CreatedAt = field.NewTime(table, "created_at")
	p.UpdatedAt = field.NewTime(table, "updated_at")

	p.fillFieldMap()

	return p
}

func (p *productModel) WithContext(ctx context.Context) IProductModelDo {
	return p.productModelDo.WithContext(ctx)
}

func (p productModel) TableName() string { return p.productModelDo.TableName() }

func (p productModel) Alias() string { return p.productModelDo.Alias() }

func (p productModel) Columns(cols ...field.Expr) gen.Columns {
	return p.productModelDo.Columns(cols...)
}

func (p *productModel) GetFieldByName(fieldName string) (field.OrderExpr, bool) {
	_f, ok := p.fieldMap[fieldName]
	if !ok || _f == nil {
		return nil, false
	}
	_oe, ok := _f.(field.OrderExpr)
	return _oe, ok
}

func (p *productModel) fillFieldMap() {
	p.fieldMap = make(map[string]field.Expr, 9)
	p.fieldMap["id"] = p.ID
	p.fieldMap["name"] = p.Name
	p.fieldMap["quantity"] = p.Quantity
	p.fieldMap["price"] = p.Price
	p.fieldMap["unit"] = p.Unit
	p.fieldMap["barcode"] = p.Barcode
	p.fieldMap["expiry_date"] = p.ExpiryDate
	p.fieldMap["created_at"] = p.CreatedAt
	p.fieldMap["updated_at"] = p.UpdatedAt
}

func (p productModel) clone(db *gorm.DB) productModel {
	p.productModelDo.ReplaceConnPool(db.Statement.ConnPool)
	return p
}

func (p productModel) replaceDB(db *gorm.DB) productModel {
	p.productModelDo.ReplaceDB(db)
	return p
}

type productModelDo struct{ gen.DO }

type IProductModelDo interface {
	gen.SubQuery
	Debug() IProductModelDo
	WithContext(ctx context.Context) IProductModelDo
	WithResult(fc func(tx gen.Dao)) gen.ResultInfo
	ReplaceDB(db *gorm.DB)
	ReadDB() IProductModelDo
	WriteDB() IProductModelDo
	As(alias string) gen.Dao
	Session(config *gorm.Session) IProductModelDo
	Columns(cols ...field.Expr) gen.Columns
	Clauses(conds ...clause.Expression) IProductModelDo
	Not(conds ...gen.Condition) IProductModelDo
	Or(conds ...gen.Condition) IProductModelDo
	Select(conds ...field.Expr) IProductModelDo
	Where(conds ...gen.Condition) IProductModelDo
	Order(conds ...field.Expr) IProductModelDo
	Distinct(cols ...field.Expr) IProductModelDo
	Omit(cols ...field.Expr) IProductModelDo
	Join(table schema.Tabler, on ...field.Expr) IProductModelDo
	LeftJoin(table schema.Tabler, on ...field.Expr) IProductModelDo
	RightJoin(table schema.Tabler, on ...field.Expr) IProductModelDo
	Group(cols ...field.Expr) IProductModelDo
	Having(conds ...gen.Condition) IProductModelDo
	Limit(limit int) IProductModelDo
	Offset(offset int) IProductModelDo
	Count() (count int64, err error)
	Scopes(funcs ...func(gen.Dao) gen.Dao) IProductModelDo
	Unscoped() IProductModelDo
	Create(values ...*model.ProductModel) error
	CreateInBatches(values []*model.ProductModel, batchSize int) error
	Save(values ...*model.ProductModel) error
	First() (*model.ProductModel, error)
	Take() (*model.ProductModel, error)
	Last() (*model.ProductModel, error)
	Find() ([]*model.ProductModel, error)
	FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.ProductModel, err error)
	FindInBatches(result *[]*model.ProductModel, batchSize int, fc func(tx gen.Dao, batch int) error) error
	Pluck(column field.Expr, dest interface{}) error
	Delete(...*model.ProductModel) (info gen.ResultInfo, err error)
	Update(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	Updates(value interface{}) (info gen.ResultInfo, err error)
	UpdateColumn(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateColumnSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	UpdateColumns(value interface{}) (info gen.ResultInfo, err error)
	UpdateFrom(q gen.SubQuery) gen.Dao
	Attrs(attrs ...field.AssignExpr) IProductModelDo
	Assign(attrs ...field.AssignExpr) IProductModelDo
	Joins(fields ...field.RelationField) IProductModelDo
	Preload(fields ...field.RelationField) IProductModelDo
	FirstOrInit() (*model.ProductModel, error)
	FirstOrCreate() (*model.ProductModel, error)
	FindByPage(offset int, limit int) (result []*model.ProductModel, count int64, err error)
	ScanByPage(result interface{}, offset int, limit int) (count int64, err error)
	Rows() (*sql.Rows, error)
	Row() *sql.Row
	Scan(result interface{}) (err error)
	Returning(value interface{}, columns ...string) IProductModelDo
	UnderlyingDB() *gorm.DB
	schema.Tabler
}

func (p productModelDo) Debug() IProductModelDo {
	return p.withDO(p.DO.Debug())
}

func (p productModelDo) WithContext(ctx context.Context) IProductModelDo {
	return p.withDO(p.DO.WithContext(ctx))
}

func (p productModelDo) ReadDB() IProductModelDo {
	return p.Clauses(dbresolver.Read)
}

func (p productModelDo) WriteDB() IProductModelDo {
	return p.Clauses(dbresolver.Write)
}

func (p productModelDo) Session(config *gorm.Session) IProductModelDo {
	return p.withDO(p.DO.Session(config))
}

func (p productModelDo) Clauses(conds ...clause.Expression) IProductModelDo {
	return p.withDO(p.DO.Clauses(conds...))
}

func (p productModelDo) Returning(value interface{}, columns ...string) IProductModelDo {
	return p.withDO(p.DO.Returning(value, columns...))
}

func (p productModelDo) Not(conds ...gen.Condition) IProductModelDo {
	return p.withDO(p.DO.Not(conds...))
}

func (p productModelDo) Or(conds ...gen.Condition) IProductModelDo {
	return p.withDO(p.DO.Or(conds...))
}

func (p productModelDo) Select(conds ...field.Expr) IProductModelDo {
	return p.withDO(p.DO.Select(conds...))
}

func (p productModelDo) Where(conds ...gen.Condition) IProductModelDo {
	return p.withDO(p.DO.Where(conds...))
}

func (p productModelDo) Order(conds ...field.Expr) IProductModelDo {
	return p.withDO(p.DO.Order(conds...))
}

func (p productModelDo) Distinct(cols ...field.Expr) IProductModelDo {
	return p.withDO(p.DO.Distinct(cols...))
}

func (p productModelDo) Omit(cols ...field.Expr) IProductModelDo {
	return p.withDO(p.DO.Omit(cols...))
}

func (p productModelDo) Join(table schema.Tabler, on ...field.Expr) IProductModelDo {
	return p.withDO(p.DO.Join(table, on...))
}

func (p productModelDo) LeftJoin(table schema.Tabler, on ...field.Expr) IProductModelDo {
	return p.withDO(p.DO.LeftJoin(table, on...))
}

func (p productModelDo) RightJoin(table schema.Tabler, on ...field.Expr) IProductModelDo {
	return p.withDO(p.DO.RightJoin(table, on...))
}

func (p productModelDo) Group(cols ...field.Expr) IProductModelDo {
	return p.withDO(p.DO.Group(cols...))
}

func (p productModelDo) Having(conds ...gen.Condition) IProductModelDo {
	return p.withDO(p.DO.Having(conds...))
}

func (p productModelDo) Limit(limit int) IProductModelDo {
	return p.withDO(p.DO.Limit(limit))
}

func (p productModelDo) Offset(offset int) IProductModelDo {
	return p.withDO(p.DO.Offset(offset))
}

func (p productModelDo) Scopes(funcs ...func(gen.Dao) gen.Dao) IProductModelDo {
	return p.withDO(p.DO.Scopes(funcs...))
}

func (p productModelDo) Unscoped() IProductModelDo {
	return p.withDO(p.DO.Unscoped())
}

func (p productModelDo) Create(values ...*model.ProductModel) error {
	if len(values) == 0 {
		return nil
	}
	return p.DO.Create(values)
}

func (p productModelDo) CreateInBatches(values []*model.ProductModel, batchSize int) error {
	return p.DO.CreateInBatches(values, batchSize)
}

// Save : !!! underlying implementation is different with GORM
// The method is equivalent to executing the statement: db.Clauses(clause.OnConflict{UpdateAll: true}).Create(values)
func (p productModelDo) Save(values ...*model.ProductModel) error {
	if len(values) == 0 {
		return nil
	}
	return p.DO.Save(values)
}

func (p productModelDo) First() (*model.ProductModel, error) {
	if result, err := p.DO.First(); err != nil {
		return nil, err
	} else {
		return result.(*model.ProductModel), nil
	}
}

func (p productModelDo) Take() (*model.ProductModel, error) {
	if result, err := p.DO.Take(); err != nil {
		return nil, err
	} else {
		return result.(*model.ProductModel), nil
	}
}

func (p productModelDo) Last() (*model.ProductModel, error) {
	if result, err := p.DO.Last(); err != nil {
		return nil, err
	} else {
		return result.(*model.ProductModel), nil
	}
}

func (p productModelDo) Find() ([]*model.ProductModel, error) {
	result, err := p.DO.Find()
	return result.([]*model.ProductModel), err
}

func (p productModelDo) FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.ProductModel, err error) {
	buf := make([]*model.ProductModel, 0, batchSize)
	err = p.DO.FindInBatches(&buf, batchSize, func(tx gen.Dao, batch int) error {
		defer func() { results = append(results, buf...) }()
		return fc(tx, batch)
	})
	return results, err
}

func (p productModelDo) FindInBatches(result *[]*model.ProductModel, batchSize int, fc func(tx gen.Dao, batch int) error) error {
	return p.DO.FindInBatches(result, batchSize, fc)
}

func (p productModelDo) Attrs(attrs ...field.AssignExpr) IProductModelDo {
	return p.withDO(p.DO.Attrs(attrs...))
}

func (p productModelDo) Assign(attrs ...field.AssignExpr) IProductModelDo {
	return p.withDO(p.DO.Assign(attrs...))
}

func (p productModelDo) Joins(fields ...field.RelationField) IProductModelDo {
	for _, _f := range fields {
		p = *p.withDO(p.DO.Joins(_f))
	}
	return &p
}

func (p productModelDo) Preload(fields ...field.RelationField) IProductModelDo {
	for _, _f := range fields {
		p = *p.withDO(p.DO.Preload(_f))
	}
	return &p
}

func (p productModelDo) FirstOrInit() (*model.ProductModel, error) {
	if result, err := p.DO.FirstOrInit(); err != nil {
		return nil, err
	} else {
		return result.(*model.ProductModel), nil
	}
}

func (p productModelDo) FirstOrCreate() (*model.ProductModel, error) {
	if result, err := p.DO.FirstOrCreate(); err != nil {
		return nil, err
	} else {
		return result.(*model.ProductModel), nil
	}
}

func (p productModelDo) FindByPage(offset int, limit int) (result []*model.ProductModel, count int64, err error) {
	result, err = p.Offset(offset).Limit(limit).Find()
	if err != nil {
		return
	}

	if size := len(result); 0 < limit && 0 < size && size < limit {
		count = int64(size + offset)
		return
	}

	count, err = p.Offset(-1).Limit(-1).Count()
	return
}

func (p productModelDo) ScanByPage(result interface{}, offset int, limit int) (count int64, err error) {
	count, err = p.Count()
	if err != nil {
		return
	}

	err = p.Offset(offset).Limit(limit).Scan(result)
	return
}

func (p productModelDo) Scan(result interface{}) (err error) {
	return p.DO.Scan(result)
}

func (p productModelDo) Delete(models ...*model.ProductModel) (result gen.ResultInfo, err error) {
	return p.DO.Delete(models)
}

func (p *productModelDo) withDO(do gen.Dao) *productModelDo {
	p.DO = *do.(*gen.DO)
	return p
}
