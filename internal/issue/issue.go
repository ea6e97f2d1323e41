// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	AssistantNotFoundId
	AssistantNotFoundRemoteId
	LaunchFailedId
	WorkdirInvalidId
	InteractiveUnsupportedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // project documentation links for this issue type
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your agentbridge config file contains syntax errors or invalid values.

## Things you can try:
- Check the error message above for the specific field
- Validate your CUE syntax with the cue command-line tool
- Show the effective configuration:
~~~
$ agentbridge config show
~~~

## Example of a valid config.cue:
~~~cue
assistant: {
  binary_path: "/usr/local/bin/claude"
  extra_args: ["--output-format", "stream-json"]
}

paths: {
  wsl_translation_enabled: true
}
~~~`,
	}

	assistantNotFoundIssue = &Issue{
		id: AssistantNotFoundId,
		mdMsg: `
# Assistant CLI not found!

The assistant binary could not be located on this machine.

## Things you can try:
- Install the assistant CLI and make sure it is on your PATH
- Point agentbridge at an explicit binary location:
~~~cue
assistant: {
  binary_path: "/path/to/assistant"
}
~~~

- Verify what agentbridge can see:
~~~
$ agentbridge env
~~~`,
	}

	assistantNotFoundRemoteIssue = &Issue{
		id: AssistantNotFoundRemoteId,
		mdMsg: `
# Assistant CLI not found on the remote host!

This editor session runs in a **remote workspace**, so the assistant binary
must be installed on the remote machine. A copy installed on your local
client is not used in a remote session.

## Things you can try:
- Open a terminal in the remote workspace and install the assistant there
- Check the remote PATH:
~~~
$ agentbridge env
~~~

- If the binary lives outside PATH on the remote host, set an explicit path
  in the *remote* configuration:
~~~cue
assistant: {
  binary_path: "/home/me/.local/bin/assistant"
}
~~~`,
	}

	launchFailedIssue = &Issue{
		id: LaunchFailedId,
		mdMsg: `
# Failed to start the assistant!

The assistant binary was found but its process could not be started.
The raw system diagnostic is printed above.

## Common causes:
- The binary is not executable (check permissions)
- The working directory no longer exists
- Resource limits prevented process creation

## Things you can try:
- Run with verbose mode for the full error chain:
~~~
$ agentbridge --verbose run
~~~

- Try launching the binary directly from a terminal in the same directory`,
	}

	workdirInvalidIssue = &Issue{
		id: WorkdirInvalidId,
		mdMsg: `
# Invalid working directory!

The working directory for the assistant could not be used.

## Things you can try:
- Check that the directory exists and is readable
- If you passed --workdir, verify the path
- With WSL path translation enabled, confirm the drive is mounted under /mnt:
~~~
$ agentbridge env
~~~`,
	}

	interactiveUnsupportedIssue = &Issue{
		id: InteractiveUnsupportedId,
		mdMsg: `
# Interactive mode is not supported here!

PTY attachment is only available on POSIX hosts. On Windows the assistant
still runs, with its output streamed through standard pipes.

## Things you can try:
- Re-run without --interactive
- Run the bridge from a WSL shell if you need a PTY on Windows`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():        configLoadFailedIssue,
		assistantNotFoundIssue.Id():       assistantNotFoundIssue,
		assistantNotFoundRemoteIssue.Id(): assistantNotFoundRemoteIssue,
		launchFailedIssue.Id():            launchFailedIssue,
		workdirInvalidIssue.Id():          workdirInvalidIssue,
		interactiveUnsupportedIssue.Id():  interactiveUnsupportedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
