package repository_word_cloud

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ninesong/wordcloud/mongo"
)

// fakeDatabase 内存版 mongo.Database，文档经过真实的 bson 编解码
type fakeDatabase struct {
	collections map[string]*fakeCollection
}

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{collections: make(map[string]*fakeCollection)}
}

func (d *fakeDatabase) Collection(name string) mongo.Collection {
	coll, ok := d.collections[name]
	if !ok {
		coll = &fakeCollection{docs: make(map[primitive.ObjectID]bson.Raw)}
		d.collections[name] = coll
	}
	return coll
}

func (d *fakeDatabase) Client() mongo.Client { return nil }

type fakeCollection struct {
	docs    map[primitive.ObjectID]bson.Raw
	order   []primitive.ObjectID
	indexes []string
	failAll error
	// cursorErr 在游标返回 cursorAfter 条文档后中断迭代
	cursorErr   error
	cursorAfter int
}

func (c *fakeCollection) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	if c.failAll != nil {
		return 0, c.failAll
	}
	n := int64(len(c.docs))
	c.docs = make(map[primitive.ObjectID]bson.Raw)
	c.order = nil
	return n, nil
}

func (c *fakeCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (mongo.Cursor, error) {
	if c.failAll != nil {
		return nil, c.failAll
	}
	docs := make([]bson.Raw, 0, len(c.order))
	for _, id := range c.order {
		docs = append(docs, c.docs[id])
	}
	if c.cursorErr != nil && c.cursorAfter < len(docs) {
		return &fakeCursor{docs: docs[:c.cursorAfter], err: c.cursorErr}, nil
	}
	return &fakeCursor{docs: docs}, nil
}

func (c *fakeCollection) Indexes() mongo.IndexView { return &fakeIndexView{coll: c} }

func (c *fakeCollection) BulkWrite() mongo.BulkWrite { return &fakeBulkWrite{coll: c} }

type fakeBulkWrite struct {
	coll   *fakeCollection
	models []mongo.BulkModel
}

func (b *fakeBulkWrite) AddModel(models ...mongo.BulkModel) {
	b.models = append(b.models, models...)
}

func (b *fakeBulkWrite) Execute(ctx context.Context) (mongo.BulkWriteResult, error) {
	if b.coll.failAll != nil {
		return nil, b.coll.failAll
	}
	if len(b.models) == 0 {
		return nil, errors.New("no operations to execute")
	}

	result := &fakeBulkResult{}
	for _, model := range b.models {
		update, ok := model.(*driver.UpdateOneModel)
		if !ok {
			return nil, fmt.Errorf("unexpected model %T", model)
		}
		id := update.Filter.(bson.M)["_id"].(primitive.ObjectID)
		raw, err := bson.Marshal(update.Update.(bson.M)["$set"])
		if err != nil {
			return nil, err
		}
		if _, exists := b.coll.docs[id]; exists {
			result.modified++
		} else {
			result.upserted++
			b.coll.order = append(b.coll.order, id)
		}
		b.coll.docs[id] = raw
	}
	return result, nil
}

type fakeBulkResult struct {
	upserted int64
	modified int64
}

func (r *fakeBulkResult) InsertedCount() int64 { return 0 }
func (r *fakeBulkResult) ModifiedCount() int64 { return r.modified }
func (r *fakeBulkResult) UpsertedCount() int64 { return r.upserted }

type fakeIndexView struct {
	coll *fakeCollection
}

func (v *fakeIndexView) CreateOne(ctx context.Context, model driver.IndexModel) (string, error) {
	keys := model.Keys.(bson.D)
	name := keys[0].Key + "_1"
	v.coll.indexes = append(v.coll.indexes, name)
	return name, nil
}

func (v *fakeIndexView) DropAll(ctx context.Context) (bson.Raw, error) {
	v.coll.indexes = nil
	return nil, nil
}

func (v *fakeIndexView) ListSpecifications(ctx context.Context) ([]*driver.IndexSpecification, error) {
	specs := []*driver.IndexSpecification{{Name: "_id_"}}
	for _, name := range v.coll.indexes {
		specs = append(specs, &driver.IndexSpecification{Name: name})
	}
	return specs, nil
}

type fakeCursor struct {
	docs []bson.Raw
	pos  int
	err  error
}

func (c *fakeCursor) Close(ctx context.Context) error { return nil }

func (c *fakeCursor) Next(ctx context.Context) bool {
	if c.pos >= len(c.docs) {
		return false
	}
	c.pos++
	return true
}

func (c *fakeCursor) Decode(v interface{}) error {
	return bson.Unmarshal(c.docs[c.pos-1], v)
}

func (c *fakeCursor) Err() error {
	if c.pos >= len(c.docs) {
		return c.err
	}
	return nil
}
