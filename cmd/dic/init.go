package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Neel3004/DIC/internal/config"
	"github.com/Neel3004/DIC/internal/home"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the dic home directory and a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		if h.ConfigExists() {
			fmt.Printf("config already exists at %s\n", h.ConfigPath())
			return nil
		}

		if err := config.WriteDefault(h.ConfigPath()); err != nil {
			return err
		}
		fmt.Printf("wrote default config to %s\n", h.ConfigPath())
		return nil
	},
}
