package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// Collection names.
const (
	ResumesCollection = "resumes"
	UsersCollection   = "users"
)

// resumeDocument is the stored shape. The owner is kept as an ObjectID so it joins
// with the users collection.
type resumeDocument struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	model.ResumeContent `bson:",inline"`
	User                primitive.ObjectID `bson:"user"`
	CreatedAt           time.Time          `bson:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at"`
}

func (d resumeDocument) toModel() model.Resume {
	r := model.Resume{
		ID:            d.ID.Hex(),
		ResumeContent: d.ResumeContent,
		User:          d.User.Hex(),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	r.Normalize()
	return r
}

// ResumeMongo is a MongoDB implementation of repository.ResumeRepository.
type ResumeMongo struct {
	coll *mongo.Collection
}

// NewResumeMongo creates a repository over the resumes collection of db.
func NewResumeMongo(db *mongo.Database) *ResumeMongo {
	return &ResumeMongo{coll: db.Collection(ResumesCollection)}
}

var _ repository.ResumeRepository = (*ResumeMongo)(nil)

// ownedFilter builds the {_id, user} filter. Identifiers that are not valid
// ObjectIDs cannot match anything.
func ownedFilter(id, userID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return bson.M{"_id": oid, "user": uid}, nil
}

func (r *ResumeMongo) Create(ctx context.Context, res *model.Resume) (*model.Resume, error) {
	uid, err := primitive.ObjectIDFromHex(res.User)
	if err != nil {
		return nil, fmt.Errorf("invalid owner id %q: %w", res.User, err)
	}
	doc := resumeDocument{
		ID:            primitive.NewObjectID(),
		ResumeContent: res.ResumeContent,
		User:          uid,
		CreatedAt:     res.CreatedAt,
		UpdatedAt:     res.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	out := doc.toModel()
	return &out, nil
}

func (r *ResumeMongo) FindByID(ctx context.Context, id, userID string) (*model.Resume, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return nil, err
	}
	var doc resumeDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mapErr(err)
	}
	out := doc.toModel()
	return &out, nil
}

func (r *ResumeMongo) ListByUser(ctx context.Context, userID string) ([]model.Resume, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []model.Resume{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"user": uid}, opts)
	if err != nil {
		return nil, err
	}
	var docs []resumeDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	items := make([]model.Resume, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toModel())
	}
	return items, nil
}

func (r *ResumeMongo) Update(ctx context.Context, id, userID string, content model.ResumeContent, updatedAt time.Time) (*model.Resume, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return nil, err
	}
	set := struct {
		model.ResumeContent `bson:",inline"`
		UpdatedAt           time.Time `bson:"updated_at"`
	}{content, updatedAt}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc resumeDocument
	if err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		return nil, mapErr(err)
	}
	out := doc.toModel()
	return &out, nil
}

func (r *ResumeMongo) Delete(ctx context.Context, id, userID string) error {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ResumeMongo) SetProfilePicture(ctx context.Context, id, userID, path string) error {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"personal_info.profile_picture": path}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func mapErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}
