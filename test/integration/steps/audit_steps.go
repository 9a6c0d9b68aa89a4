package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/defend-your-code/form/internal/domain/entity"
)

// registerAuditSteps registers steps checking the rejection audit trail.
func registerAuditSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^(\d+) rejections? should be audited for field "([^"]*)"$`, rejectionsShouldBeAuditedForField)
	ctx.Step(`^the audit trail should hold (\d+) rejections?$`, theAuditTrailShouldHold)
	ctx.Step(`^no audited rejection should mention "([^"]*)"$`, noAuditedRejectionShouldMention)
}

func rejectionsShouldBeAuditedForField(ctx context.Context, count int, field string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	n, err := tc.rejections.CountByField(ctx, tc.sessionID, entity.Field(field))
	if err != nil {
		return err
	}
	if n != int64(count) {
		return fmt.Errorf("expected %d audited rejections for %s, got %d", count, field, n)
	}
	return nil
}

func theAuditTrailShouldHold(ctx context.Context, count int) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	found, err := tc.rejections.FindBySession(ctx, tc.sessionID)
	if err != nil {
		return err
	}
	if len(found) != count {
		return fmt.Errorf("expected %d audited rejections, got %d", count, len(found))
	}
	return nil
}

func noAuditedRejectionShouldMention(ctx context.Context, text string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	found, err := tc.rejections.FindBySession(ctx, tc.sessionID)
	if err != nil {
		return err
	}
	for _, r := range found {
		if strings.Contains(r.Message, text) {
			return fmt.Errorf("audited rejection %s mentions %q", r.Field, text)
		}
	}
	return nil
}
