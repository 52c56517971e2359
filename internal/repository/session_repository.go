package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("sessions")}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.AssessmentSession) error {
	res, err := r.Col.InsertOne(ctx, session)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		session.ID = oid.Hex()
	}
	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.AssessmentSession, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var session models.AssessmentSession
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Save writes the full mutable state of a session back. Sessions are small,
// so replacing the changed fields wholesale keeps the state machine and the
// stored document in lockstep.
func (r *SessionRepository) Save(ctx context.Context, session *models.AssessmentSession) error {
	objID, err := primitive.ObjectIDFromHex(session.ID)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"phase":             session.Phase,
		"current_index":     session.CurrentIndex,
		"language":          session.Language,
		"theme":             session.Theme,
		"user_name":         session.UserName,
		"answers":           session.Answers,
		"start_time":        session.StartTime,
		"end_time":          session.EndTime,
		"submission_status": session.Submission,
		"submission_error":  session.SubmissionError,
		"assessment_id":     session.AssessmentID,
		"updated_at":        session.UpdatedAt,
	}}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, update)
	return err
}
