package usecase

import (
	"context"
	"testing"

	"github.com/SAI-KARTHIK999/SkinSey/dto"
)

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"anonymous fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripCodeFences(tc.in); got != tc.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestGeneratePlan(t *testing.T) {
	ctx := context.Background()
	req := &dto.RoutinePlanRequest{SkinType: "oily", Score: 70, Steps: 3}

	t.Run("fenced json decoded", func(t *testing.T) {
		fake := &fakeTextCompleter{responses: []string{
			"```json\n{\"morningRoutine\":[\"cleanser\",\"moisturizer\",\"sunscreen\"]," +
				"\"eveningRoutine\":[\"cleanser\",\"serum\",\"moisturizer\"]," +
				"\"motivationalNote\":\"keep going\"}\n```",
		}}
		svc := NewRoutinePlanService(fake)

		plan, err := svc.GeneratePlan(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(plan.MorningRoutine) != 3 || len(plan.EveningRoutine) != 3 {
			t.Errorf("plan = %+v", plan)
		}
		if plan.MotivationalNote != "keep going" {
			t.Errorf("note = %q", plan.MotivationalNote)
		}
	})

	t.Run("non-json reply fails", func(t *testing.T) {
		fake := &fakeTextCompleter{responses: []string{"here is your routine: wash your face"}}
		svc := NewRoutinePlanService(fake)

		if _, err := svc.GeneratePlan(ctx, req); err == nil {
			t.Fatal("expected decode error")
		}
	})

	t.Run("empty step lists fail", func(t *testing.T) {
		fake := &fakeTextCompleter{responses: []string{
			`{"morningRoutine":[],"eveningRoutine":[],"motivationalNote":"hm"}`,
		}}
		svc := NewRoutinePlanService(fake)

		if _, err := svc.GeneratePlan(ctx, req); err == nil {
			t.Fatal("expected error for empty plan")
		}
	})
}
