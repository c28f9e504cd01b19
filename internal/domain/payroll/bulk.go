package payroll

import (
	"context"
	"sort"
	"sync"
)

// GenerateBulk runs payslip generation for every active employee with a
// bounded worker pool. One employee's failure never aborts the others:
// successes are collected regardless, and failures come back inside a
// PartialBatchError so callers get both halves of the outcome.
func (s *Service) GenerateBulk(ctx context.Context, month, year int) (BulkResult, error) {
	ids, err := s.Store.ListActiveEmployeeIDs(ctx)
	if err != nil {
		return BulkResult{}, err
	}

	result := BulkResult{Month: month, Year: year}
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, s.Workers)
	)

	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(employeeID string) {
			defer wg.Done()
			defer func() { <-sem }()

			slip, err := s.Generate(ctx, employeeID, month, year)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failures = append(result.Failures, EmployeeError{
					EmployeeID: employeeID,
					Message:    err.Error(),
				})
				return
			}
			result.Payslips = append(result.Payslips, slip)
		}(id)
	}
	wg.Wait()

	sort.Slice(result.Payslips, func(i, j int) bool {
		return result.Payslips[i].EmployeeID < result.Payslips[j].EmployeeID
	})
	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].EmployeeID < result.Failures[j].EmployeeID
	})

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if len(result.Failures) > 0 {
		return result, &PartialBatchError{Failures: result.Failures}
	}
	return result, nil
}
