package cmd

import (
	"fmt"
	"io"
	"os"
)

type CompletionCmd struct {
	Shell string `arg:"" help:"Shell type: bash, zsh, or fish" enum:"bash,zsh,fish"`
}

func (c *CompletionCmd) Run() error {
	return c.write(os.Stdout)
}

func (c *CompletionCmd) write(w io.Writer) error {
	var script string
	switch c.Shell {
	case "bash":
		script = bashCompletion
	case "zsh":
		script = zshCompletion
	case "fish":
		script = fishCompletion
	default:
		return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", c.Shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

const bashCompletion = `# bash completion for gouvtile

_gouvtile_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main commands
    if [[ ${COMP_CWORD} -eq 1 ]]; then
        opts="arrange inspect config version completion"
        COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
        return 0
    fi

    # Options shared by arrange and inspect
    if [[ ${COMP_WORDS[1]} == "arrange" || ${COMP_WORDS[1]} == "inspect" ]]; then
        case "${prev}" in
            -c|--config)
                COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- ${cur}) )
                return 0
                ;;
            -o|--output)
                COMPREPLY=( $(compgen -f -X '!*.obj' -- ${cur}) )
                return 0
                ;;
            --preview)
                COMPREPLY=( $(compgen -f -X '!*.pdf' -- ${cur}) )
                return 0
                ;;
            --report)
                COMPREPLY=( $(compgen -f -X '!*.xlsx' -- ${cur}) )
                return 0
                ;;
            --outline)
                COMPREPLY=( $(compgen -f -X '!*.dxf' -- ${cur}) )
                return 0
                ;;
            -t|--start-tile|--spacing|--stack-columns|-s|--select)
                return 0
                ;;
            *)
                if [[ ${cur} == -* ]]; then
                    opts="-c --config -s --select -t --start-tile --spacing --use-current-tile --stacking --stack-columns -h --help"
                    if [[ ${COMP_WORDS[1]} == "arrange" ]]; then
                        opts="${opts} -o --output --preview --report --outline --dry-run --strict --open"
                    fi
                    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
                else
                    COMPREPLY=( $(compgen -f -X '!*.obj' -- ${cur}) )
                fi
                return 0
                ;;
        esac
    fi

    # Options for config command
    if [[ ${COMP_WORDS[1]} == "config" ]]; then
        if [[ ${COMP_CWORD} -eq 2 ]]; then
            COMPREPLY=( $(compgen -W "show" -- ${cur}) )
        else
            COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- ${cur}) )
        fi
        return 0
    fi

    # Options for completion command
    if [[ ${COMP_WORDS[1]} == "completion" ]]; then
        if [[ ${COMP_CWORD} -eq 2 ]]; then
            opts="bash zsh fish"
            COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
        fi
        return 0
    fi
}

complete -F _gouvtile_completions gouvtile
`

const zshCompletion = `#compdef gouvtile

_gouvtile() {
    local -a commands
    commands=(
        'arrange:Arrange the UV shells of an OBJ scene into unit tiles'
        'inspect:Show topology classes and the planned tiles of an OBJ scene'
        'config:Work with arrange configuration files'
        'version:Show version information'
        'completion:Generate shell completion script'
    )

    local -a layout_opts
    layout_opts=(
        '(-c --config)'{-c,--config}'[YAML configuration file]:config file:_files -g "*.{yaml,yml}"'
        '(-s --select)'{-s,--select}'[Groups or objects to arrange]:names:'
        '(-t --start-tile)'{-t,--start-tile}'[1-based tile to start in]:tile:'
        '--spacing[Spacing added around every shell]:spacing:'
        '--use-current-tile[Start in the tile of the first selected shell]'
        '--stacking[Stack identical shells into column blocks]'
        '--stack-columns[Block width in shells when stacking]:columns:'
        '(-h --help)'{-h,--help}'[Show help]'
    )

    local -a arrange_opts
    arrange_opts=(
        $layout_opts
        '(-o --output)'{-o,--output}'[Output OBJ file]:output file:_files -g "*.obj"'
        '--preview[Write a PDF preview]:pdf file:_files -g "*.pdf"'
        '--report[Write an XLSX placement report]:xlsx file:_files -g "*.xlsx"'
        '--outline[Write a DXF outline]:dxf file:_files -g "*.dxf"'
        '--dry-run[Plan the layout without writing anything]'
        '--strict[Fail when some groups cannot be arranged]'
        '--open[Open the preview in the default application]'
        '*:obj file:_files -g "*.obj"'
    )

    local -a inspect_opts
    inspect_opts=(
        $layout_opts
        '*:obj file:_files -g "*.obj"'
    )

    local -a completion_shells
    completion_shells=(
        'bash:Generate bash completion'
        'zsh:Generate zsh completion'
        'fish:Generate fish completion'
    )

    _arguments -C \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                arrange)
                    _arguments $arrange_opts
                    ;;
                inspect)
                    _arguments $inspect_opts
                    ;;
                config)
                    _arguments '1:subcommand:(show)' '*:config file:_files -g "*.{yaml,yml}"'
                    ;;
                completion)
                    _describe 'shell' completion_shells
                    ;;
                version)
                    _arguments '(-h --help)'{-h,--help}'[Show help]'
                    ;;
            esac
            ;;
    esac
}

_gouvtile
`

const fishCompletion = `# fish completion for gouvtile

# Main commands
complete -c gouvtile -f -n "__fish_use_subcommand" -a "arrange" -d "Arrange the UV shells of an OBJ scene"
complete -c gouvtile -f -n "__fish_use_subcommand" -a "inspect" -d "Show topology classes and planned tiles"
complete -c gouvtile -f -n "__fish_use_subcommand" -a "config" -d "Work with arrange configuration files"
complete -c gouvtile -f -n "__fish_use_subcommand" -a "version" -d "Show version information"
complete -c gouvtile -f -n "__fish_use_subcommand" -a "completion" -d "Generate shell completion script"

# arrange and inspect options
complete -c gouvtile -f -n "__fish_seen_subcommand_from arrange inspect" -s c -l config -d "YAML configuration file" -r -a "(__fish_complete_suffix .yaml)"
complete -c gouvtile -f -n "__fish_seen_subcommand_from arrange inspect" -s s -l select -d "Groups or objects to arrange" -r
complete -c gouvtile -f -n "__fish_seen_subcommand_from arrange inspect" -s t -l start-tile -d "1-based tile to start in" -r
complete -c gouvtile -f -n "__fish_seen_subcommand_from arrange inspect" -l spacing -d "Spacing added around every shell" -r
complete -c gouvtile -f -n "__fish_seen_subcommand_from arrange inspect" -l use-current-tile -d "Start in the tile of the first selected shell"
complete -c gouvtile -f -n "__fish_seen_subcommand_from arrange inspect" -l stacking -d "Stack identical shells into column blocks"
complete -c gouvtile -f -n "__fish_seen_subcommand_from arrange inspect" -l stack-columns -d "Block width in shells when stacking" -r
complete -c gouvtile -n "__fish_seen_subcommand_from arrange inspect" -a "(__fish_complete_suffix .obj)" -d "OBJ scene"

# arrange only options
complete -c gouvtile -f -n "__fish_seen_subcommand_from arrange" -s o -l output -d "Output OBJ file" -r -a "(__fish_complete_suffix .obj)"
complete -c gouvtile -f -n "__fish_seen_subcommand_from arrange" -l preview -d "Write a PDF preview" -r -a "(__fish_complete_suffix .pdf)"
complete -c gouvtile -f -n "__fish_seen_subcommand_from arrange" -l report -d "Write an XLSX placement report" -r -a "(__fish_complete_suffix .xlsx)"
complete -c gouvtile -f -n "__fish_seen_subcommand_from arrange" -l outline -d "Write a DXF outline" -r -a "(__fish_complete_suffix .dxf)"
complete -c gouvtile -f -n "__fish_seen_subcommand_from arrange" -l dry-run -d "Plan the layout without writing anything"
complete -c gouvtile -f -n "__fish_seen_subcommand_from arrange" -l strict -d "Fail when some groups cannot be arranged"
complete -c gouvtile -f -n "__fish_seen_subcommand_from arrange" -l open -d "Open the preview in the default application"

# config command options
complete -c gouvtile -f -n "__fish_seen_subcommand_from config" -a "show" -d "Print the effective configuration"
complete -c gouvtile -n "__fish_seen_subcommand_from show" -a "(__fish_complete_suffix .yaml)" -d "YAML config"

# completion command options
complete -c gouvtile -f -n "__fish_seen_subcommand_from completion" -a "bash" -d "Generate bash completion"
complete -c gouvtile -f -n "__fish_seen_subcommand_from completion" -a "zsh" -d "Generate zsh completion"
complete -c gouvtile -f -n "__fish_seen_subcommand_from completion" -a "fish" -d "Generate fish completion"
`

func (c *CompletionCmd) Help() string {
	return `
Generate shell completion scripts for gouvtile.

Examples:
  # Bash
  gouvtile completion bash > ~/.local/share/bash-completion/completions/gouvtile

  # Zsh
  gouvtile completion zsh > ~/.zsh/completion/_gouvtile

  # Fish
  gouvtile completion fish > ~/.config/fish/completions/gouvtile.fish
`
}
