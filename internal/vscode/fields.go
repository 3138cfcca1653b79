package vscode

import (
	"slices"

	"github.com/iancoleman/strcase"
)

// Field is a key of the "colors" object in a VS Code color theme.
type Field string

// Name returns the snake_case form of the key, e.g. "editor.lineNumber.foreground"
// becomes "editor_line_number_foreground".
func (f Field) Name() string {
	return strcase.ToSnake(string(f))
}

// Known reports whether f is part of the recognized vocabulary.
func (f Field) Known() bool {
	return slices.Contains(KnownFields, f)
}

const (
	Foreground            Field = "foreground"
	FocusBorder           Field = "focusBorder"
	ErrorForeground       Field = "errorForeground"
	DescriptionForeground Field = "descriptionForeground"
	WidgetShadow          Field = "widget.shadow"
	SelectionBackground   Field = "selection.background"
	IconForeground        Field = "icon.foreground"

	ButtonBackground      Field = "button.background"
	ButtonForeground      Field = "button.foreground"
	ButtonHoverBackground Field = "button.hoverBackground"

	DropdownBackground Field = "dropdown.background"
	DropdownBorder     Field = "dropdown.border"
	DropdownForeground Field = "dropdown.foreground"

	InputBackground            Field = "input.background"
	InputBorder                Field = "input.border"
	InputForeground            Field = "input.foreground"
	InputPlaceholderForeground Field = "input.placeholderForeground"

	BadgeBackground Field = "badge.background"
	BadgeForeground Field = "badge.foreground"

	ScrollbarSliderBackground       Field = "scrollbarSlider.background"
	ScrollbarSliderHoverBackground  Field = "scrollbarSlider.hoverBackground"
	ScrollbarSliderActiveBackground Field = "scrollbarSlider.activeBackground"

	ListActiveSelectionBackground   Field = "list.activeSelectionBackground"
	ListActiveSelectionForeground   Field = "list.activeSelectionForeground"
	ListFocusBackground             Field = "list.focusBackground"
	ListHoverBackground             Field = "list.hoverBackground"
	ListInactiveSelectionBackground Field = "list.inactiveSelectionBackground"
	ListDropBackground              Field = "list.dropBackground"
	ListHighlightForeground         Field = "list.highlightForeground"
	ListWarningForeground           Field = "list.warningForeground"
	ListErrorForeground             Field = "list.errorForeground"

	ActivityBarBackground Field = "activityBar.background"
	ActivityBarForeground Field = "activityBar.foreground"
	ActivityBarBorder     Field = "activityBar.border"

	SideBarBackground              Field = "sideBar.background"
	SideBarForeground              Field = "sideBar.foreground"
	SideBarBorder                  Field = "sideBar.border"
	SideBarTitleForeground         Field = "sideBarTitle.foreground"
	SideBarSectionHeaderBackground Field = "sideBarSectionHeader.background"

	EditorBackground                 Field = "editor.background"
	EditorForeground                 Field = "editor.foreground"
	EditorSelectionBackground        Field = "editor.selectionBackground"
	EditorLineHighlightBackground    Field = "editor.lineHighlightBackground"
	EditorFindMatchBackground        Field = "editor.findMatchBackground"
	EditorCursorForeground           Field = "editorCursor.foreground"
	EditorWhitespaceForeground       Field = "editorWhitespace.foreground"
	EditorIndentGuideBackground      Field = "editorIndentGuide.background"
	EditorLineNumberForeground       Field = "editorLineNumber.foreground"
	EditorLineNumberActiveForeground Field = "editorLineNumber.activeForeground"
	EditorGutterBackground           Field = "editorGutter.background"
	EditorErrorForeground            Field = "editorError.foreground"
	EditorWarningForeground          Field = "editorWarning.foreground"
	EditorInfoForeground             Field = "editorInfo.foreground"

	EditorGroupHeaderTabsBackground Field = "editorGroupHeader.tabsBackground"
	TabActiveBackground             Field = "tab.activeBackground"
	TabActiveForeground             Field = "tab.activeForeground"
	TabInactiveBackground           Field = "tab.inactiveBackground"
	TabInactiveForeground           Field = "tab.inactiveForeground"
	TabBorder                       Field = "tab.border"

	PanelBackground            Field = "panel.background"
	PanelBorder                Field = "panel.border"
	PanelTitleActiveForeground Field = "panelTitle.activeForeground"

	StatusBarBackground Field = "statusBar.background"
	StatusBarForeground Field = "statusBar.foreground"
	StatusBarBorder     Field = "statusBar.border"

	TitleBarActiveBackground Field = "titleBar.activeBackground"
	TitleBarActiveForeground Field = "titleBar.activeForeground"
	TitleBarBorder           Field = "titleBar.border"

	TerminalBackground        Field = "terminal.background"
	TerminalForeground        Field = "terminal.foreground"
	TerminalAnsiBlack         Field = "terminal.ansiBlack"
	TerminalAnsiRed           Field = "terminal.ansiRed"
	TerminalAnsiGreen         Field = "terminal.ansiGreen"
	TerminalAnsiYellow        Field = "terminal.ansiYellow"
	TerminalAnsiBlue          Field = "terminal.ansiBlue"
	TerminalAnsiMagenta       Field = "terminal.ansiMagenta"
	TerminalAnsiCyan          Field = "terminal.ansiCyan"
	TerminalAnsiWhite         Field = "terminal.ansiWhite"
	TerminalAnsiBrightBlack   Field = "terminal.ansiBrightBlack"
	TerminalAnsiBrightRed     Field = "terminal.ansiBrightRed"
	TerminalAnsiBrightGreen   Field = "terminal.ansiBrightGreen"
	TerminalAnsiBrightYellow  Field = "terminal.ansiBrightYellow"
	TerminalAnsiBrightBlue    Field = "terminal.ansiBrightBlue"
	TerminalAnsiBrightMagenta Field = "terminal.ansiBrightMagenta"
	TerminalAnsiBrightCyan    Field = "terminal.ansiBrightCyan"
	TerminalAnsiBrightWhite   Field = "terminal.ansiBrightWhite"
)

// KnownFields is the recognized vocabulary of color keys.
var KnownFields = []Field{
	Foreground, FocusBorder, ErrorForeground, DescriptionForeground, WidgetShadow,
	SelectionBackground, IconForeground,
	ButtonBackground, ButtonForeground, ButtonHoverBackground,
	DropdownBackground, DropdownBorder, DropdownForeground,
	InputBackground, InputBorder, InputForeground, InputPlaceholderForeground,
	BadgeBackground, BadgeForeground,
	ScrollbarSliderBackground, ScrollbarSliderHoverBackground, ScrollbarSliderActiveBackground,
	ListActiveSelectionBackground, ListActiveSelectionForeground, ListFocusBackground,
	ListHoverBackground, ListInactiveSelectionBackground, ListDropBackground,
	ListHighlightForeground, ListWarningForeground, ListErrorForeground,
	ActivityBarBackground, ActivityBarForeground, ActivityBarBorder,
	SideBarBackground, SideBarForeground, SideBarBorder, SideBarTitleForeground,
	SideBarSectionHeaderBackground,
	EditorBackground, EditorForeground, EditorSelectionBackground,
	EditorLineHighlightBackground, EditorFindMatchBackground, EditorCursorForeground,
	EditorWhitespaceForeground, EditorIndentGuideBackground, EditorLineNumberForeground,
	EditorLineNumberActiveForeground, EditorGutterBackground, EditorErrorForeground,
	EditorWarningForeground, EditorInfoForeground,
	EditorGroupHeaderTabsBackground, TabActiveBackground, TabActiveForeground,
	TabInactiveBackground, TabInactiveForeground, TabBorder,
	PanelBackground, PanelBorder, PanelTitleActiveForeground,
	StatusBarBackground, StatusBarForeground, StatusBarBorder,
	TitleBarActiveBackground, TitleBarActiveForeground, TitleBarBorder,
	TerminalBackground, TerminalForeground,
	TerminalAnsiBlack, TerminalAnsiRed, TerminalAnsiGreen, TerminalAnsiYellow,
	TerminalAnsiBlue, TerminalAnsiMagenta, TerminalAnsiCyan, TerminalAnsiWhite,
	TerminalAnsiBrightBlack, TerminalAnsiBrightRed, TerminalAnsiBrightGreen, TerminalAnsiBrightYellow,
	TerminalAnsiBrightBlue, TerminalAnsiBrightMagenta, TerminalAnsiBrightCyan, TerminalAnsiBrightWhite,
}
