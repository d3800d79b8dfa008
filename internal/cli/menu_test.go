package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	cliadapter "github.com/example/desk/internal/adapters/cli"
	"github.com/example/desk/internal/config"
	"github.com/example/desk/internal/wire"
)

func init() {
	color.NoColor = true
}

// runScript seeds a fresh in-memory desk and feeds input to the menu.
func runScript(t *testing.T, seeded bool, input string) string {
	t.Helper()

	svc, activityDB, err := wire.BuildDeskService(config.DefaultConfig())
	if err != nil {
		t.Fatalf("BuildDeskService failed: %v", err)
	}
	t.Cleanup(func() { activityDB.Close() })

	ctx := context.Background()
	if seeded {
		if err := svc.Seed(ctx); err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
	}

	out := &bytes.Buffer{}
	menu := NewMenu(cliadapter.NewDeskAdapter(svc, out), strings.NewReader(input), out)
	if err := menu.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func TestMenu_ExitOption(t *testing.T) {
	output := runScript(t, true, "0\n")
	if !strings.Contains(output, "CUSTOMER SERVICE DESK") {
		t.Errorf("expected menu, got: %s", output)
	}
	if !strings.Contains(output, "Service desk closed.") {
		t.Errorf("expected goodbye, got: %s", output)
	}
}

func TestMenu_EOFExits(t *testing.T) {
	output := runScript(t, true, "1\n")
	if !strings.Contains(output, "[10] Customer ID: CLI010") {
		t.Errorf("expected full queue, got: %s", output)
	}
	if strings.Contains(output, "Service desk closed.") {
		t.Error("EOF should not print the exit message")
	}
}

func TestMenu_ServeNextMovesCustomer(t *testing.T) {
	output := runScript(t, true, "2\n2\n3\n0\n")

	if !strings.Contains(output, "Served: Customer ID: CLI001") {
		t.Errorf("expected CLI001 served first, got: %s", output)
	}
	if strings.Index(output, "Served: Customer ID: CLI001") > strings.Index(output, "Served: Customer ID: CLI002") {
		t.Error("customers served out of order")
	}
	if !strings.Contains(output, "[1] Request ID: REQ_AUTO_") {
		t.Errorf("expected service record on top of history, got: %s", output)
	}
	if !strings.Contains(output, "Service completed for customer João Souza") {
		t.Errorf("expected latest service record, got: %s", output)
	}
}

func TestMenu_EmptyStructures(t *testing.T) {
	output := runScript(t, false, "2\n5\n7\n0\n")

	if !strings.Contains(output, "Error: service queue is empty") {
		t.Errorf("expected empty queue error, got: %s", output)
	}
	if !strings.Contains(output, "Error: request history is empty") {
		t.Errorf("expected empty history error, got: %s", output)
	}
	if !strings.Contains(output, "Service queue:   EMPTY") || !strings.Contains(output, "Request history: EMPTY") {
		t.Errorf("expected empty status, got: %s", output)
	}
}

func TestMenu_AddCustomerAndRequest(t *testing.T) {
	input := strings.Join([]string{
		"6", "CLI011", "Beatriz Nunes", "Billing question",
		"4", "REQ011", "Network setup",
		"1", "5", "0",
	}, "\n") + "\n"
	output := runScript(t, false, input)

	if !strings.Contains(output, "✓ Customer Beatriz Nunes (ID: CLI011) added to the queue") {
		t.Errorf("expected customer added, got: %s", output)
	}
	if !strings.Contains(output, "✓ Request REQ011 added to history") {
		t.Errorf("expected request added, got: %s", output)
	}
	if !strings.Contains(output, "[1] Customer ID: CLI011 | Name: Beatriz Nunes | Reason: Billing question") {
		t.Errorf("expected queue listing, got: %s", output)
	}
	if !strings.Contains(output, "Removed (top): Request ID: REQ011 | Description: Network setup") {
		t.Errorf("expected request removed, got: %s", output)
	}
}

func TestMenu_InvalidInput(t *testing.T) {
	output := runScript(t, true, "abc\n42\n\n0\n")

	if strings.Count(output, "Invalid input. Please enter a number.") != 2 {
		t.Errorf("expected two invalid-input messages, got: %s", output)
	}
	if !strings.Contains(output, "Invalid option. Try again.") {
		t.Errorf("expected invalid option message, got: %s", output)
	}
}

func TestMenu_GuardErrorIsReported(t *testing.T) {
	output := runScript(t, false, "6\n\nNobody\n\n0\n")
	if !strings.Contains(output, "Error: customer ID is required") {
		t.Errorf("expected guard error, got: %s", output)
	}
}

func TestMenu_FormInterruptedByEOF(t *testing.T) {
	output := runScript(t, false, "6\nCLI011\n")
	if strings.Contains(output, "added to the queue") {
		t.Errorf("customer should not be added from an incomplete form: %s", output)
	}
}

func TestMenu_Activity(t *testing.T) {
	output := runScript(t, true, "2\n8\n0\n")
	if !strings.Contains(output, "ACT-0003") || !strings.Contains(output, "dequeue") {
		t.Errorf("expected activity rows, got: %s", output)
	}
}

func TestMenu_LongAnswerKeepsSession(t *testing.T) {
	long := strings.Repeat("x", 100_000)
	input := strings.Join([]string{
		"6", "CLI011", long, "Billing",
		"6", "CLI012", "Rita", "Billing",
		"1", "0",
	}, "\n") + "\n"
	output := runScript(t, false, input)

	if !strings.Contains(output, `Error: answer to "Name" is too long (max 4096 characters)`) {
		t.Errorf("expected too-long error, got: %.500s", output)
	}
	if strings.Contains(output, "(ID: CLI011) added") {
		t.Error("customer with an over-long name must not be queued")
	}
	if !strings.Contains(output, "[1] Customer ID: CLI012 | Name: Rita | Reason: Billing") {
		t.Errorf("session should continue after a long answer")
	}
	if !strings.Contains(output, "Service desk closed.") {
		t.Error("expected the menu to reach the exit option")
	}
}

func TestMenu_LongOptionLine(t *testing.T) {
	output := runScript(t, false, strings.Repeat("9", 100_000)+"\n7\n0\n")
	if !strings.Contains(output, "Invalid input. Please enter a number.") {
		t.Error("expected an over-long option to be rejected as invalid input")
	}
	if !strings.Contains(output, "Service desk closed.") {
		t.Error("expected the menu to reach the exit option")
	}
}

func TestMenu_LastLineWithoutNewline(t *testing.T) {
	output := runScript(t, false, "7\n0")
	if !strings.Contains(output, "Service desk closed.") {
		t.Errorf("expected exit on an unterminated final line, got: %s", output)
	}
}
