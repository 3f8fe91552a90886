// File: database/repository/appointment/transaction.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"miagenda/models"
)

// InsertIfNoConflict performs the overlap check and the insert in one session
// transaction so two concurrent bookings for the same professional cannot both
// pass the check before either writes.
func (r *mongoAppointmentRepo) InsertIfNoConflict(ctx context.Context, appt *models.Appointment) ([]models.Appointment, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var conflicts []models.Appointment
	txnFn := func(sc mongo.SessionContext) (interface{}, error) {
		filter := overlapFilter(appt.ProfessionalID, appt.Start, appt.End, models.ActiveStatuses(), "")
		cursor, err := r.coll.Find(sc, filter, options.Find().SetSort(bson.M{"start": 1}))
		if err != nil {
			return nil, fmt.Errorf("overlap query failed: %w", err)
		}
		if err := cursor.All(sc, &conflicts); err != nil {
			return nil, fmt.Errorf("overlap decode failed: %w", err)
		}
		if len(conflicts) > 0 {
			// Not an error: the transaction commits empty and the caller
			// surfaces the conflict.
			return nil, nil
		}

		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			return nil, fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil, nil
	}

	if _, err := sess.WithTransaction(ctx, txnFn); err != nil {
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}
	return conflicts, nil
}

// RescheduleIfNoConflict moves an existing appointment under the same
// transactional rule, excluding the appointment itself from the overlap query.
func (r *mongoAppointmentRepo) RescheduleIfNoConflict(ctx context.Context, professionalID, id string, newStart time.Time, durationMinutes int) ([]models.Appointment, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	newEnd := newStart.Add(time.Duration(durationMinutes) * time.Minute)

	var conflicts []models.Appointment
	txnFn := func(sc mongo.SessionContext) (interface{}, error) {
		filter := overlapFilter(professionalID, newStart, newEnd, models.ActiveStatuses(), id)
		cursor, err := r.coll.Find(sc, filter, options.Find().SetSort(bson.M{"start": 1}))
		if err != nil {
			return nil, fmt.Errorf("overlap query failed: %w", err)
		}
		if err := cursor.All(sc, &conflicts); err != nil {
			return nil, fmt.Errorf("overlap decode failed: %w", err)
		}
		if len(conflicts) > 0 {
			return nil, nil
		}

		res, err := r.coll.UpdateOne(sc,
			bson.M{"id": id, "professionalId": professionalID},
			bson.M{"$set": bson.M{
				"start":           newStart,
				"end":             newEnd,
				"durationMinutes": durationMinutes,
				"updatedAt":       time.Now(),
			}},
		)
		if err != nil {
			return nil, fmt.Errorf("reschedule update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}
		return nil, nil
	}

	if _, err := sess.WithTransaction(ctx, txnFn); err != nil {
		return nil, err
	}
	return conflicts, nil
}
