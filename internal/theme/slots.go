package theme

// StatusSlot names a status color in the target schema.
type StatusSlot string

const (
	StatusConflict StatusSlot = "conflict"
	StatusCreated  StatusSlot = "created"
	StatusDeleted  StatusSlot = "deleted"
	StatusError    StatusSlot = "error"
	StatusHidden   StatusSlot = "hidden"
	StatusIgnored  StatusSlot = "ignored"
	StatusInfo     StatusSlot = "info"
	StatusModified StatusSlot = "modified"
	StatusRenamed  StatusSlot = "renamed"
	StatusSuccess  StatusSlot = "success"
	StatusWarning  StatusSlot = "warning"
)

// StatusSlots lists every status slot the schema recognizes.
var StatusSlots = []StatusSlot{
	StatusConflict, StatusCreated, StatusDeleted, StatusError, StatusHidden, StatusIgnored,
	StatusInfo, StatusModified, StatusRenamed, StatusSuccess, StatusWarning,
}

// ColorSlot names a general UI color in the target schema.
type ColorSlot string

const (
	Border            ColorSlot = "border"
	BorderVariant     ColorSlot = "border_variant"
	BorderFocused     ColorSlot = "border_focused"
	BorderSelected    ColorSlot = "border_selected"
	BorderTransparent ColorSlot = "border_transparent"
	BorderDisabled    ColorSlot = "border_disabled"

	ElevatedSurfaceBackground ColorSlot = "elevated_surface_background"
	SurfaceBackground         ColorSlot = "surface_background"
	Background                ColorSlot = "background"

	ElementBackground    ColorSlot = "element_background"
	ElementHover         ColorSlot = "element_hover"
	ElementActive        ColorSlot = "element_active"
	ElementSelected      ColorSlot = "element_selected"
	ElementDisabled      ColorSlot = "element_disabled"
	DropTargetBackground ColorSlot = "drop_target_background"

	GhostElementBackground ColorSlot = "ghost_element_background"
	GhostElementHover      ColorSlot = "ghost_element_hover"
	GhostElementActive     ColorSlot = "ghost_element_active"
	GhostElementSelected   ColorSlot = "ghost_element_selected"
	GhostElementDisabled   ColorSlot = "ghost_element_disabled"

	Text            ColorSlot = "text"
	TextMuted       ColorSlot = "text_muted"
	TextPlaceholder ColorSlot = "text_placeholder"
	TextDisabled    ColorSlot = "text_disabled"
	TextAccent      ColorSlot = "text_accent"

	Icon            ColorSlot = "icon"
	IconMuted       ColorSlot = "icon_muted"
	IconDisabled    ColorSlot = "icon_disabled"
	IconPlaceholder ColorSlot = "icon_placeholder"
	IconAccent      ColorSlot = "icon_accent"

	StatusBarBackground   ColorSlot = "status_bar_background"
	TitleBarBackground    ColorSlot = "title_bar_background"
	ToolbarBackground     ColorSlot = "toolbar_background"
	TabBarBackground      ColorSlot = "tab_bar_background"
	TabInactiveBackground ColorSlot = "tab_inactive_background"
	TabActiveBackground   ColorSlot = "tab_active_background"
	PanelBackground       ColorSlot = "panel_background"
	ScrollbarThumb        ColorSlot = "scrollbar_thumb_background"
	ScrollbarTrack        ColorSlot = "scrollbar_track_background"

	EditorForeground                ColorSlot = "editor_foreground"
	EditorBackground                ColorSlot = "editor_background"
	EditorGutterBackground          ColorSlot = "editor_gutter_background"
	EditorSubheaderBackground       ColorSlot = "editor_subheader_background"
	EditorActiveLineBackground      ColorSlot = "editor_active_line_background"
	EditorHighlightedLineBackground ColorSlot = "editor_highlighted_line_background"
	EditorLineNumber                ColorSlot = "editor_line_number"
	EditorActiveLineNumber          ColorSlot = "editor_active_line_number"
	EditorInvisible                 ColorSlot = "editor_invisible"
	EditorWrapGuide                 ColorSlot = "editor_wrap_guide"
	EditorActiveWrapGuide           ColorSlot = "editor_active_wrap_guide"

	TerminalBackground        ColorSlot = "terminal_background"
	TerminalForeground        ColorSlot = "terminal_foreground"
	TerminalAnsiBlack         ColorSlot = "terminal_ansi_black"
	TerminalAnsiRed           ColorSlot = "terminal_ansi_red"
	TerminalAnsiGreen         ColorSlot = "terminal_ansi_green"
	TerminalAnsiYellow        ColorSlot = "terminal_ansi_yellow"
	TerminalAnsiBlue          ColorSlot = "terminal_ansi_blue"
	TerminalAnsiMagenta       ColorSlot = "terminal_ansi_magenta"
	TerminalAnsiCyan          ColorSlot = "terminal_ansi_cyan"
	TerminalAnsiWhite         ColorSlot = "terminal_ansi_white"
	TerminalAnsiBrightBlack   ColorSlot = "terminal_ansi_bright_black"
	TerminalAnsiBrightRed     ColorSlot = "terminal_ansi_bright_red"
	TerminalAnsiBrightGreen   ColorSlot = "terminal_ansi_bright_green"
	TerminalAnsiBrightYellow  ColorSlot = "terminal_ansi_bright_yellow"
	TerminalAnsiBrightBlue    ColorSlot = "terminal_ansi_bright_blue"
	TerminalAnsiBrightMagenta ColorSlot = "terminal_ansi_bright_magenta"
	TerminalAnsiBrightCyan    ColorSlot = "terminal_ansi_bright_cyan"
	TerminalAnsiBrightWhite   ColorSlot = "terminal_ansi_bright_white"

	LinkTextHover ColorSlot = "link_text_hover"
)

// ColorSlots lists every general color slot the schema recognizes.
var ColorSlots = []ColorSlot{
	Border, BorderVariant, BorderFocused, BorderSelected, BorderTransparent, BorderDisabled,
	ElevatedSurfaceBackground, SurfaceBackground, Background,
	ElementBackground, ElementHover, ElementActive, ElementSelected, ElementDisabled, DropTargetBackground,
	GhostElementBackground, GhostElementHover, GhostElementActive, GhostElementSelected, GhostElementDisabled,
	Text, TextMuted, TextPlaceholder, TextDisabled, TextAccent,
	Icon, IconMuted, IconDisabled, IconPlaceholder, IconAccent,
	StatusBarBackground, TitleBarBackground, ToolbarBackground, TabBarBackground,
	TabInactiveBackground, TabActiveBackground, PanelBackground, ScrollbarThumb, ScrollbarTrack,
	EditorForeground, EditorBackground, EditorGutterBackground, EditorSubheaderBackground,
	EditorActiveLineBackground, EditorHighlightedLineBackground, EditorLineNumber, EditorActiveLineNumber,
	EditorInvisible, EditorWrapGuide, EditorActiveWrapGuide,
	TerminalBackground, TerminalForeground,
	TerminalAnsiBlack, TerminalAnsiRed, TerminalAnsiGreen, TerminalAnsiYellow,
	TerminalAnsiBlue, TerminalAnsiMagenta, TerminalAnsiCyan, TerminalAnsiWhite,
	TerminalAnsiBrightBlack, TerminalAnsiBrightRed, TerminalAnsiBrightGreen, TerminalAnsiBrightYellow,
	TerminalAnsiBrightBlue, TerminalAnsiBrightMagenta, TerminalAnsiBrightCyan, TerminalAnsiBrightWhite,
	LinkTextHover,
}
