// Package wander is the navigation and presentation-state core of a
// point-and-click game built on [Ebitengine].
//
// It switches between rooms, gates progress behind button-sequence riddles,
// shows a secondary "mask" overlay whose content follows the active room,
// and runs every one of those changes behind a single-flight fade to black
// with back history.
//
// # Quick start
//
//	stage := wander.NewStage(wander.DefaultStageConfig())
//	lobby := wander.NewContainer("lobby")
//	study := wander.NewContainer("study")
//	study.Visible = false
//	stage.Content().AddChild(lobby)
//	stage.Content().AddChild(study)
//
//	toLobby := wander.NewButton("to_lobby", 80, 40)
//	toStudy := wander.NewButton("door", 80, 40)
//	lobby.AddChild(toStudy)
//	study.AddChild(toLobby)
//
//	stage.NewGraph(wander.GraphConfig{
//		Name: "house",
//		Triggers: []wander.Trigger{
//			{Button: toLobby, Target: lobby},
//			{Button: toStudy, Target: study},
//		},
//	})
//	stage.SetBackButton(wander.NewButton("back", 60, 60))
//	wander.Run(stage, wander.RunConfig{Title: "House"})
//
// Layouts can also be described in YAML; see [LoadLayout] and
// [NewStageFromLayout].
//
// # Pieces
//
// A [Graph] maps trigger buttons to target nodes, remembers which target is
// active and keeps a back history. An optional [Puzzle] matches presses
// against an expected order and, when solved, records the riddle in the
// [RiddleLedger] and reveals a reward. Nodes may carry a RequiredRiddle that
// keeps them closed until the riddle is solved.
//
// The [Coordinator] fades a full-screen cover in, applies the change while
// the screen is black, and fades out again. Requests made while a fade is
// running are dropped.
//
// The [Overlay] opens and closes with its own fade-and-zoom animation and
// shows a background plus one indexed mask from the [AssetSet] resolved for
// the active room: a trigger's override first, then the destination's nested
// graph, then the switching graph, then a fallback sprite.
//
// Everything is single-threaded and frame driven: animations are [Tween]s
// advanced by [Stage.Update] (or [Stage.Step] in tests). Collaborators such
// as audio subscribe to notifications with [Stage.On].
//
// [Ebitengine]: https://ebitengine.org
package wander
