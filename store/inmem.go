package store

import (
	"context"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InMem implements Store on plain maps, for tests and for running the
// API without a Mongo instance. Filter support covers the shapes the
// controllers issue: field equality, $or, and case-insensitive regex.
// Unique keys are enforced on insert only.
type InMem struct {
	mu          sync.Mutex
	collections map[string][]bson.M
	uniqueKeys  map[string][]string
}

func NewInMem() *InMem {
	return &InMem{
		collections: map[string][]bson.M{},
		uniqueKeys:  map[string][]string{Users: {"email"}},
	}
}

func (s *InMem) Insert(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	norm, err := normalize(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := norm["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		norm["_id"] = id
	}

	for _, key := range s.uniqueKeys[collection] {
		value, present := norm[key]
		if !present {
			continue
		}
		for _, existing := range s.collections[collection] {
			if reflect.DeepEqual(existing[key], value) {
				return primitive.NilObjectID, ErrDuplicateKey
			}
		}
	}

	s.collections[collection] = append(s.collections[collection], norm)
	return id, nil
}

func (s *InMem) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			return decode(doc, out)
		}
	}
	return ErrNotFound
}

func (s *InMem) FindMany(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return errors.New("store: out must be a pointer to a slice")
	}
	slice := v.Elem()
	elemType := slice.Type().Elem()

	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		elem := reflect.New(elemType)
		if err := decode(doc, elem.Interface()); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem.Elem())
	}
	v.Elem().Set(slice)
	return nil
}

func (s *InMem) UpdateOne(ctx context.Context, collection string, filter, set bson.M) (UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	norm, err := normalize(set)
	if err != nil {
		return UpdateResult{}, err
	}

	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		modified := false
		for key, value := range norm {
			if !reflect.DeepEqual(doc[key], value) {
				doc[key] = value
				modified = true
			}
		}
		res := UpdateResult{Matched: 1}
		if modified {
			res.Modified = 1
		}
		return res, nil
	}
	return UpdateResult{}, nil
}

func (s *InMem) IncrementField(ctx context.Context, collection string, filter bson.M, field string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		switch v := doc[field].(type) {
		case int32:
			doc[field] = v + int32(delta)
		case int64:
			doc[field] = v + int64(delta)
		case float64:
			doc[field] = v + float64(delta)
		default:
			doc[field] = int64(delta)
		}
		return nil
	}
	// no match is a no-op, mirroring $inc through updateOne
	return nil
}

func (s *InMem) DeleteOne(ctx context.Context, collection string, filter bson.M) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			s.collections[collection] = append(docs[:i], docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *InMem) Close(ctx context.Context) error {
	return nil
}

// normalize runs a value through a bson round trip so stored documents
// and filters compare with the same representations the driver uses.
func normalize(doc interface{}) (bson.M, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "store: marshal document")
	}
	var out bson.M
	if err := bson.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "store: unmarshal document")
	}
	return out, nil
}

func decode(doc bson.M, out interface{}) error {
	data, err := bson.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "store: marshal document")
	}
	if err := bson.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "store: decode document")
	}
	return nil
}

func matches(doc bson.M, filter bson.M) bool {
	for key, want := range filter {
		if key == "$or" {
			branches, ok := want.([]bson.M)
			if !ok {
				return false
			}
			anyMatch := false
			for _, branch := range branches {
				if matches(doc, branch) {
					anyMatch = true
					break
				}
			}
			if !anyMatch {
				return false
			}
			continue
		}

		got, ok := doc[key]
		if !ok || !valueMatches(got, want) {
			return false
		}
	}
	return true
}

func valueMatches(got, want interface{}) bool {
	if rx, ok := want.(primitive.Regex); ok {
		pattern := rx.Pattern
		if strings.Contains(rx.Options, "i") {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false
		}
		s, ok := got.(string)
		return ok && re.MatchString(s)
	}
	return reflect.DeepEqual(got, want)
}
