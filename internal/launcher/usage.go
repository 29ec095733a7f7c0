package launcher

const usage = `Usage: todolauncher [mode]

Modes:
  editor     Start the todo editor (default)
  silent     Start the todo editor minimized, in the background
  wallpaper  Start the wallpaper generator
  setup      Run the complete setup
  config     Show the current configuration
  uninstall  Remove shortcuts and configuration
  help       Show this message

Examples:
  todolauncher            Start the todo editor
  todolauncher silent     Start the editor minimized in the background
  todolauncher wallpaper  Start the wallpaper generator`
