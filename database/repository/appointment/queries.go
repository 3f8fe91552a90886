// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"miagenda/models"
)

func (r *mongoAppointmentRepo) ListByDay(ctx context.Context, professionalID string, day time.Time) ([]models.Appointment, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return r.ListByRange(ctx, professionalID, dayStart, dayStart.AddDate(0, 0, 1))
}

func (r *mongoAppointmentRepo) ListByRange(ctx context.Context, professionalID string, from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professionalId": professionalID,
		"start":          bson.M{"$gte": from, "$lt": to},
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.M{"start": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// overlapFilter builds the half-open interval intersection query:
// [start, end) intersects [rangeStart, rangeEnd) iff start < rangeEnd && end > rangeStart.
func overlapFilter(professionalID string, rangeStart, rangeEnd time.Time, statuses []string, excludeID string) bson.M {
	filter := bson.M{
		"professionalId": professionalID,
		"status":         bson.M{"$in": statuses},
		"start":          bson.M{"$lt": rangeEnd},
		"end":            bson.M{"$gt": rangeStart},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

func (r *mongoAppointmentRepo) FindOverlapping(ctx context.Context, professionalID string, rangeStart, rangeEnd time.Time, statuses []string, excludeID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := overlapFilter(professionalID, rangeStart, rangeEnd, statuses, excludeID)
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.M{"start": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding overlapping appointments: %w", err)
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) SumCompletedIncome(ctx context.Context, professionalID string, from, to time.Time) (models.IncomeStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"professionalId": professionalID,
			"status":         models.StatusCompleted,
			"start":          bson.M{"$gte": from, "$lt": to},
		}},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$price"},
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return models.IncomeStats{}, fmt.Errorf("failed to aggregate income: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total float64 `bson:"total"`
		Count int     `bson:"count"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return models.IncomeStats{}, fmt.Errorf("decode error: %w", err)
	}

	stats := models.IncomeStats{From: from, To: to}
	if len(result) > 0 {
		stats.TotalIncome = result[0].Total
		stats.CompletedCount = result[0].Count
	}
	return stats, nil
}
