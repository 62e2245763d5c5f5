//go:build scenario

package game

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

const scenarioTypeName = "scenario"

// Scenario is a scripted deal session: setup, lifecycle calls, and
// expectations, in script order.
type Scenario struct {
	Name  string
	Steps []Step
}

type Step struct {
	Kind string
	Args map[string]any
}

func loadScenarioFromFile(path string) (*Scenario, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	registerLuaTypes(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}

	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	scenario, ok := ud.(*Scenario)
	if !ok || scenario == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

func registerLuaTypes(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)

	state.NewTable()
	lua.SetFunctions(state, scenarioConstructor, 0)
	state.SetGlobal("Scenario")
}

var scenarioConstructor = []lua.RegistryFunction{
	{Name: "new", Function: scenarioNew},
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	scenario := &Scenario{Name: name}
	state.PushUserData(scenario)
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "link", Function: scenarioLink},
	{Name: "player", Function: scenarioPlayer},
	{Name: "give_note", Function: scenarioGiveNote},
	{Name: "propose", Function: scenarioPropose},
	{Name: "accept", Function: scenarioAccept},
	{Name: "reject", Function: scenarioReject},
	{Name: "cancel", Function: scenarioCancel},
	{Name: "eliminate", Function: scenarioEliminate},
	{Name: "expect_invalid", Function: scenarioExpectInvalid},
	{Name: "expect_status", Function: scenarioExpectStatus},
	{Name: "expect_balance", Function: scenarioExpectBalance},
	{Name: "expect_score", Function: scenarioExpectScore},
	{Name: "expect_pending", Function: scenarioExpectPending},
}

func scenarioLink(state *lua.State) int {
	scenario := checkScenario(state)
	a := lua.CheckString(state, 2)
	b := lua.CheckString(state, 3)
	appendStep(scenario, "link", map[string]any{"a": a, "b": b})
	return 0
}

func scenarioPlayer(state *lua.State) int {
	scenario := checkScenario(state)
	name := lua.CheckString(state, 2)
	opts := optionalTable(state, 3)
	data := map[string]any{"name": name}
	for key, value := range opts {
		data[key] = value
	}
	appendStep(scenario, "player", data)
	return 0
}

func scenarioGiveNote(state *lua.State) int {
	scenario := checkScenario(state)
	player := lua.CheckString(state, 2)
	kind := lua.CheckString(state, 3)
	appendStep(scenario, "give_note", map[string]any{"player": player, "kind": kind})
	return 0
}

func scenarioPropose(state *lua.State) int {
	scenario := checkScenario(state)
	label := lua.CheckString(state, 2)
	lua.CheckType(state, 3, lua.TypeTable)
	data := tableToMap(state, 3)
	data["label"] = label
	appendStep(scenario, "propose", data)
	return 0
}

func scenarioAccept(state *lua.State) int {
	scenario := checkScenario(state)
	label := lua.CheckString(state, 2)
	appendStep(scenario, "accept", map[string]any{"label": label})
	return 0
}

func scenarioReject(state *lua.State) int {
	scenario := checkScenario(state)
	label := lua.CheckString(state, 2)
	appendStep(scenario, "reject", map[string]any{"label": label})
	return 0
}

func scenarioCancel(state *lua.State) int {
	scenario := checkScenario(state)
	label := lua.CheckString(state, 2)
	requester := lua.CheckString(state, 3)
	appendStep(scenario, "cancel", map[string]any{"label": label, "requester": requester})
	return 0
}

func scenarioEliminate(state *lua.State) int {
	scenario := checkScenario(state)
	player := lua.CheckString(state, 2)
	appendStep(scenario, "eliminate", map[string]any{"player": player})
	return 0
}

func scenarioExpectInvalid(state *lua.State) int {
	scenario := checkScenario(state)
	label := lua.CheckString(state, 2)
	appendStep(scenario, "expect_invalid", map[string]any{"label": label})
	return 0
}

func scenarioExpectStatus(state *lua.State) int {
	scenario := checkScenario(state)
	label := lua.CheckString(state, 2)
	status := lua.CheckString(state, 3)
	appendStep(scenario, "expect_status", map[string]any{"label": label, "status": status})
	return 0
}

func scenarioExpectBalance(state *lua.State) int {
	scenario := checkScenario(state)
	player := lua.CheckString(state, 2)
	lua.CheckType(state, 3, lua.TypeTable)
	data := tableToMap(state, 3)
	data["player"] = player
	appendStep(scenario, "expect_balance", data)
	return 0
}

func scenarioExpectScore(state *lua.State) int {
	scenario := checkScenario(state)
	player := lua.CheckString(state, 2)
	score := int(lua.CheckNumber(state, 3))
	appendStep(scenario, "expect_score", map[string]any{"player": player, "score": score})
	return 0
}

func scenarioExpectPending(state *lua.State) int {
	scenario := checkScenario(state)
	player := lua.CheckString(state, 2)
	count := int(lua.CheckNumber(state, 3))
	appendStep(scenario, "expect_pending", map[string]any{"player": player, "count": count})
	return 0
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if scenario, ok := ud.(*Scenario); ok && scenario != nil {
		return scenario
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func appendStep(scenario *Scenario, kind string, data map[string]any) {
	if scenario == nil {
		return
	}
	if data == nil {
		data = map[string]any{}
	}
	scenario.Steps = append(scenario.Steps, Step{Kind: kind, Args: data})
}

func optionalTable(state *lua.State, index int) map[string]any {
	if state.IsNoneOrNil(index) || state.TypeOf(index) != lua.TypeTable {
		return map[string]any{}
	}
	return tableToMap(state, index)
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToMap(state, index)
	default:
		return nil
	}
}

func normalizeNumber(value float64) any {
	if math.Mod(value, 1) == 0 {
		return int(value)
	}
	return value
}

func intArg(args map[string]any, key string) int {
	if value, ok := args[key].(int); ok {
		return value
	}
	return 0
}

func stringArg(args map[string]any, key string) string {
	if value, ok := args[key].(string); ok {
		return value
	}
	return ""
}

func tableArg(args map[string]any, key string) map[string]any {
	if value, ok := args[key].(map[string]any); ok {
		return value
	}
	return map[string]any{}
}
