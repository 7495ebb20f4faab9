package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/coopportal/coopportal/internal/domain/grade"
	"github.com/shopspring/decimal"
)

type InMemoryGradeStore struct {
	mu      sync.Mutex
	records map[string]*grade.Record

	students *InMemoryStudentStore
}

func NewInMemoryGradeStore() *InMemoryGradeStore {
	return &InMemoryGradeStore{records: make(map[string]*grade.Record)}
}

func (r *InMemoryGradeStore) Attach(students *InMemoryStudentStore) {
	r.students = students
}

func (r *InMemoryGradeStore) Create(ctx context.Context, rec *grade.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *InMemoryGradeStore) ListByStudent(ctx context.Context, studentID string) ([]*grade.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*grade.Record
	for _, rec := range r.records {
		if rec.StudentID == studentID {
			cp := *rec
			result = append(result, &cp)
		}
	}
	sortGrades(result)
	return result, nil
}

func (r *InMemoryGradeStore) ListAll(ctx context.Context) ([]*grade.RecordWithStudent, error) {
	r.mu.Lock()
	records := make([]*grade.Record, 0, len(r.records))
	for _, rec := range r.records {
		cp := *rec
		records = append(records, &cp)
	}
	r.mu.Unlock()

	sortGrades(records)
	result := make([]*grade.RecordWithStudent, 0, len(records))
	for _, rec := range records {
		row := &grade.RecordWithStudent{Record: *rec}
		if r.students != nil {
			if s, ok := r.students.lookup(rec.StudentID); ok {
				row.StudentName = s.FullName
				row.StudentEmail = s.Email
			}
		}
		result = append(result, row)
	}
	return result, nil
}

func (r *InMemoryGradeStore) CourseStats(ctx context.Context) ([]*grade.CourseStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	highBar := decimal.NewFromInt(3)
	byCourse := make(map[string][]*grade.Record)
	for _, rec := range r.records {
		byCourse[rec.CourseName] = append(byCourse[rec.CourseName], rec)
	}

	var stats []*grade.CourseStats
	for course, records := range byCourse {
		row := &grade.CourseStats{CourseName: course}
		students := make(map[string]struct{})
		sum := decimal.Zero
		for i, rec := range records {
			students[rec.StudentID] = struct{}{}
			sum = sum.Add(rec.Grade)
			if i == 0 || rec.Grade.LessThan(row.MinGrade) {
				row.MinGrade = rec.Grade
			}
			if i == 0 || rec.Grade.GreaterThan(row.MaxGrade) {
				row.MaxGrade = rec.Grade
			}
			if rec.Grade.GreaterThanOrEqual(highBar) {
				row.HighPerformers++
			}
		}
		row.StudentCount = len(students)
		row.AvgGrade = sum.Div(decimal.NewFromInt(int64(len(records)))).Round(2)
		stats = append(stats, row)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].CourseName < stats[j].CourseName })
	return stats, nil
}

func sortGrades(records []*grade.Record) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].RecordedDate.Equal(records[j].RecordedDate) {
			return records[i].RecordedDate.After(records[j].RecordedDate)
		}
		return records[i].ID > records[j].ID
	})
}

func (r *InMemoryGradeStore) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[string]*grade.Record)
}
