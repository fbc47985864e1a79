package cli_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/agent-board/internal/cli"
	"github.com/calvinalkan/agent-board/internal/config"
)

// dumpedLanes runs script followed by "dump" and returns the lanes of the
// dumped board.
func dumpedLanes(t *testing.T, c *cli.CLI, script string, extra ...string) map[string][]string {
	t.Helper()

	stdout, stderr, code := c.Session(script+"\ndump\n", extra...)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	idx := strings.Index(stdout, "columns:")
	require.GreaterOrEqual(t, idx, 0, "no dump in output:\n%s", stdout)

	seed, err := config.ParseSeed([]byte(stdout[idx:]), true)
	require.NoError(t, err)

	lanes := map[string][]string{}
	for column, tasks := range seed.Columns {
		ids := []string{}
		for _, task := range tasks {
			ids = append(ids, task.ID)
		}

		lanes[column] = ids
	}

	return lanes
}

func Test_Session_Moves_Task_Before_Target_When_Dropped_On_Task_Above(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("board.yaml", `
columns:
  message:
    - {id: x, title: X}
    - {id: "y", title: "Y"}
    - {id: z, title: Z}
`)

	lanes := dumpedLanes(t, c, "drag z\ndrop x", "--seed", "board.yaml")

	if diff := cmp.Diff(map[string][]string{
		"message":    {"z", "x", "y"},
		"scheduling": {},
		"visit":      {},
	}, lanes); diff != "" {
		t.Fatalf("lanes mismatch (-want +got):\n%s", diff)
	}
}

func Test_Session_Moves_Task_Across_Columns_When_Dropped_On_Task(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("board.json", `{"columns": {
		"message": [{"id": "x", "title": "X"}, {"id": "y", "title": "Y"}],
		"visit": [{"id": "w", "title": "W"}],
	}}`)

	lanes := dumpedLanes(t, c, "move x w", "--seed", "board.json")

	assert.Equal(t, []string{"y"}, lanes["message"])
	assert.Equal(t, []string{"x", "w"}, lanes["visit"])
}

func Test_Session_Appends_Task_When_Dropped_On_Column(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	lanes := dumpedLanes(t, c, "move t1 visit\nmove t4 message")

	assert.Equal(t, []string{"t4"}, lanes["message"])
	assert.Equal(t, []string{"t3", "t1"}, lanes["visit"])
}

func Test_Session_Prints_Outcomes_When_Moves_Are_NoOps(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, code := c.Session(strings.Join([]string{
		"move ghost t1",
		"move t1 ghost",
		"move t1 t1",
		"move t4 message",
		"log",
	}, "\n"))

	require.Equal(t, 0, code, "stderr: %s", stderr)

	assertOrder(t, stdout,
		"dragging ghost: ghost",
		"no-op: dragged task not found",
		"no-op: drop target not found",
		"no-op: task dropped on itself",
		"no-op: task already in position",
		"#1 move ghost -> t1: no-op: dragged task not found",
		"#2 move t1 -> ghost: no-op: drop target not found",
		"#3 move t4 -> message: no-op: task already in position",
	)
	cli.AssertNotContains(t, stdout, "#4")
}

func Test_Session_Shows_Overlay_Title_When_Drag_Starts(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, _, code := c.Session("drag t2\ncancel\ncancel\n")

	assert.Equal(t, 0, code)
	assertOrder(t, stdout, "dragging t2: Integrar API", "cancelled drag of t2", "nothing to cancel")
}

func Test_Session_Adds_Task_To_Top_When_Add_Command_Used(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, code := c.Session("add visit   Confirmar horário  \nshow\n")

	require.Equal(t, 0, code, "stderr: %s", stderr)

	id := addedID(t, stdout, "visit")
	assertOrder(t, stdout, "Visit [visit] (2)", id, "Confirmar horário", "t3", "Escrever testes")
}

func Test_Session_Submits_Draft_And_Clears_It_When_Submit_Used(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, code := c.Session(strings.Join([]string{
		"draft scheduling   Agendar visita  ",
		"submit scheduling",
		"submit scheduling",
		"draft message    ",
		"submit message",
	}, "\n"))

	require.Equal(t, 0, code, "stderr: %s", stderr)

	id := addedID(t, stdout, "scheduling")
	assert.Equal(t, 1, strings.Count(stdout, "added "))
	assertOrder(t, stdout, "added "+id, "nothing to submit for scheduling", "nothing to submit for message")
}

func Test_Session_Prints_Title_And_Location_When_Queried(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, code := c.Session("title t3\ntitle nope\nwhere t2\ncheck\n")

	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Equal(t, "Escrever testes\nnope\nscheduling\nok\n", stdout)
}

func Test_Session_Fails_But_Continues_When_Commands_Error(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, code := c.Session(strings.Join([]string{
		"drop t1",
		"frob",
		"add backlog Something",
		"add visit    ",
		"move t1",
		"where ghost",
		"draft nowhere text",
		"title t1",
	}, "\n"))

	assert.Equal(t, 1, code)
	assert.Equal(t, "Criar layout\n", stdout)

	cli.AssertContains(t, stderr, "error: no drag in progress")
	cli.AssertContains(t, stderr, "error: unknown command: frob")
	cli.AssertContains(t, stderr, `error: invalid column: "backlog"`)
	cli.AssertContains(t, stderr, "error: title is empty")
	cli.AssertContains(t, stderr, "error: usage: move <task> <task|column>")
	cli.AssertContains(t, stderr, "error: task not found: ghost")
	cli.AssertContains(t, stderr, `error: invalid column: "nowhere"`)
	cli.AssertContains(t, stderr, "error: session had failing commands: 7 of 8")
}

func Test_Session_Stops_Reading_When_Quit(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, _, code := c.Session("title t1\nquit\ntitle t2\nfrob\n")

	assert.Equal(t, 0, code)
	assert.Equal(t, "Criar layout\n", stdout)
}

func Test_Session_Ignores_Comments_And_Blank_Lines_When_Scripted(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, _, code := c.Session("# setup\n\n   \ntitle t4\n")

	assert.Equal(t, 0, code)
	assert.Equal(t, "Refinar UI\n", stdout)
}

func Test_Session_Echoes_Commands_With_Prompt_When_Echo_Set(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, _, code := c.RunWithInput("drag t1\ndrop t4\n", "session", "--echo")

	assert.Equal(t, 0, code)
	assertOrder(t, stdout, "kb> drag t1", "kb (dragging t1)> drop t4", "moved t1 over t4 (now in message)")
}

func Test_Session_Logs_Transitions_When_Verbose(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	_, stderr, code := c.Session("move t1 t4\nmove t1 t1\n", "-v")

	assert.Equal(t, 0, code)
	cli.AssertContains(t, stderr, "level=debug")
	cli.AssertContains(t, stderr, "msg=transition")
	cli.AssertContains(t, stderr, "op=move")
	cli.AssertContains(t, stderr, "outcome=applied")
	cli.AssertContains(t, stderr, "target=t4")
	cli.AssertContains(t, stderr, "msg=\"drop on self ignored\"")
}

func Test_Session_Stays_Quiet_On_Stderr_When_Not_Verbose(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	_, stderr, code := c.Session("move t1 t4\n")

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
}

func Test_Session_Disables_Journal_When_Limit_Zero(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, _, code := c.RunWithInput("move t1 t4\nlog\n", "session", "--journal-limit", "0")

	assert.Equal(t, 0, code)
	cli.AssertContains(t, stdout, "(no transitions)")
}

func Test_Session_Rejects_Arguments_When_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("session", "extra")

	cli.AssertContains(t, stderr, "session takes no arguments")
}

var addedRe = regexp.MustCompile(`added (\S+) to (\S+)`)

// addedID returns the id from the first "added <id> to <column>" line.
func addedID(t *testing.T, stdout, column string) string {
	t.Helper()

	m := addedRe.FindStringSubmatch(stdout)
	require.NotNil(t, m, "no added line in:\n%s", stdout)
	require.Equal(t, column, m[2])

	return m[1]
}
